package notify

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/domain"
	"food-delivery/internal/metrics"
)

// Sink is an optional persistent mirror for notifications. The in-memory
// store stays authoritative for reads; mirroring is best-effort.
type Sink interface {
	Insert(ctx context.Context, n domain.Notification) error
}

// Store keeps per-user notification sequences, append-only for the lifetime
// of the process. One mutex over the whole map, same rationale as the
// assignment store.
type Store struct {
	mu   sync.Mutex
	m    map[string][]domain.Notification
	sink Sink // nil when no backend is configured
	lg   *logger.Logger
}

func NewStore(sink Sink, lg *logger.Logger) *Store {
	return &Store{m: make(map[string][]domain.Notification), sink: sink, lg: lg}
}

// Append adds n to the user's sequence, creating it on first use, and
// mirrors to the sink asynchronously. A sink failure never affects the
// in-memory result.
func (s *Store) Append(userID string, n domain.Notification) {
	s.mu.Lock()
	s.m[userID] = append(s.m[userID], n)
	s.mu.Unlock()
	metrics.NotificationsStored.Inc()

	if s.sink != nil {
		go func() {
			if err := s.sink.Insert(context.Background(), n); err != nil {
				s.lg.Error("notification_mirror_failed", err, map[string]any{"user_id": userID})
			}
		}()
	}
}

// ListAll flattens every user's sequence. Cross-user order is unspecified;
// each user's own entries keep arrival order.
func (s *Store) ListAll() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Flatten(lo.Values(s.m))
}

// ListFor returns a copy of the user's sequence, or ok=false when the user
// has no notifications.
func (s *Store) ListFor(userID string) ([]domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := s.m[userID]
	if len(seq) == 0 {
		return nil, false
	}
	out := make([]domain.Notification, len(seq))
	copy(out, seq)
	return out, true
}
