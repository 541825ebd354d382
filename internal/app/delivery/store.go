package delivery

import (
	"sync"

	"food-delivery/internal/domain"
)

// Store is the single source of truth for assignment records. One coarse
// mutex guards the whole map; contention is bounded by human-scale order
// volume, so granularity is not worth the complexity.
type Store struct {
	mu sync.Mutex
	m  map[string]*domain.Assignment
}

func NewStore() *Store { return &Store{m: make(map[string]*domain.Assignment)} }

// Create inserts a fresh CREATED record. An existing record for the same
// order is overwritten: duplicate order.placed events restart the delivery
// (last-writer-wins, intentionally no dedup).
func (s *Store) Create(orderID string, start, dest domain.Coordinates) domain.Assignment {
	a := &domain.Assignment{
		OrderID:   orderID,
		Status:    domain.StatusCreated,
		Location:  start,
		Start:     start,
		Dest:      dest,
		CreatedAt: domain.NowMillis(),
	}
	s.mu.Lock()
	s.m[orderID] = a
	s.mu.Unlock()
	return *a
}

// Get returns a copy of the record, or ok=false.
func (s *Store) Get(orderID string) (domain.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.m[orderID]
	if !ok {
		return domain.Assignment{}, false
	}
	return *a, true
}

// List returns copies of all records in unspecified order.
func (s *Store) List() []domain.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Assignment, 0, len(s.m))
	for _, a := range s.m {
		out = append(out, *a)
	}
	return out
}

// Mutate applies fn to the record under the lock and returns the updated
// copy. Readers never observe a partially applied mutation.
func (s *Store) Mutate(orderID string, fn func(*domain.Assignment)) (domain.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.m[orderID]
	if !ok {
		return domain.Assignment{}, false
	}
	fn(a)
	return *a, true
}
