package delivery

import (
	"context"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/domain"
)

// Placeholder route endpoints. Real geocoding is out of scope; every
// delivery walks the same straight line.
var (
	defaultStart = domain.Coordinates{0, 0}
	defaultDest  = domain.Coordinates{10, 10}
)

// OrderHandler consumes order.placed events and kicks off a simulated
// delivery per order.
type OrderHandler struct {
	store *Store
	sim   *Simulator
	lg    *logger.Logger
}

func NewOrderHandler(store *Store, sim *Simulator, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{store: store, sim: sim, lg: lg}
}

// Handle creates the assignment and spawns the simulator. The message is
// acked by the subscribe loop as soon as Handle returns; delivery completion
// is deliberately not awaited. Malformed bodies and bodies without an order
// identifier are dropped.
func (h *OrderHandler) Handle(routingKey string, body []byte) {
	data, ok := domain.DecodeEvent(body)
	if !ok {
		h.lg.Error("order_event_unparseable", nil, map[string]any{"routing_key": routingKey})
		return
	}
	orderID := data.OrderID()
	if orderID == "" {
		h.lg.Error("order_event_missing_id", nil, map[string]any{"routing_key": routingKey})
		return
	}

	h.store.Create(orderID, defaultStart, defaultDest)
	h.lg.Info("assignment_created", map[string]any{"order_id": orderID})

	go h.sim.Run(context.Background(), orderID)
}
