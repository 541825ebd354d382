package delivery

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/domain"
)

// Publisher is the outbound half of the event bus seen by this package.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any)
}

// steps is the fixed number of progress updates per delivery.
const steps = 10

// Simulator advances one order at a time from ASSIGNED to DELIVERED,
// publishing an update after every step. Each Run is meant to be spawned as
// its own goroutine and is never joined or canceled: once started, a
// delivery always completes.
type Simulator struct {
	store *Store
	bus   Publisher
	lg    *logger.Logger

	// StepInterval is the wall-clock pause before each step.
	StepInterval time.Duration
}

func NewSimulator(store *Store, bus Publisher, lg *logger.Logger) *Simulator {
	return &Simulator{store: store, bus: bus, lg: lg, StepInterval: time.Second}
}

// Run assigns a rider and walks the order through all progress steps.
// A missing assignment aborts silently: the order was never created, so
// there is nothing to deliver.
func (s *Simulator) Run(ctx context.Context, orderID string) {
	riderID := newRiderID()
	a, ok := s.store.Mutate(orderID, func(a *domain.Assignment) {
		a.Status = domain.StatusAssigned
		a.RiderID = &riderID
	})
	if !ok {
		return
	}
	s.bus.Publish(ctx, domain.KeyOrderAssigned, domain.OrderAssignedEvent{
		OrderID: orderID, RiderID: riderID,
	})
	s.lg.Debug("rider_assigned", map[string]any{"order_id": orderID, "rider_id": riderID})

	for k := 1; k <= steps; k++ {
		time.Sleep(s.StepInterval)

		frac := float64(k) / float64(steps)
		loc := domain.Coordinates{
			round6(a.Start[0] + (a.Dest[0]-a.Start[0])*frac),
			round6(a.Start[1] + (a.Dest[1]-a.Start[1])*frac),
		}
		status := domain.StatusInTransit
		if k == steps {
			status = domain.StatusDelivered
		}

		upd, ok := s.store.Mutate(orderID, func(a *domain.Assignment) {
			a.Location = loc
			a.Progress = int(frac * 100)
			a.Status = status
		})
		if !ok {
			// record vanished mid-run; nothing left to report
			return
		}
		s.bus.Publish(ctx, domain.KeyDeliveryUpdate, domain.DeliveryUpdateEvent{
			OrderID:  orderID,
			RiderID:  riderID,
			Location: upd.Location,
			Progress: upd.Progress,
			Status:   upd.Status,
		})
	}
	s.lg.Info("delivery_completed", map[string]any{"order_id": orderID, "rider_id": riderID})
}

func newRiderID() string {
	id := uuid.New()
	return fmt.Sprintf("rider-%x", id[:3])
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
