package domain

import "encoding/json"

// Routing keys on the food_orders topic exchange.
const (
	KeyOrderPlaced    = "order.placed"
	KeyOrderAssigned  = "order.assigned"
	KeyDeliveryUpdate = "delivery.update"
	KeyOrderDelivered = "order.delivered"
)

// OrderAssignedEvent is published once per order when a rider is picked.
type OrderAssignedEvent struct {
	OrderID string `json:"orderId"`
	RiderID string `json:"riderId"`
}

// DeliveryUpdateEvent is published after every simulator step.
type DeliveryUpdateEvent struct {
	OrderID  string      `json:"orderId"`
	RiderID  string      `json:"riderId"`
	Location Coordinates `json:"location"`
	Progress int         `json:"progress"`
	Status   Status      `json:"status"`
}

// Event is a leniently decoded inbound message body. Upstream producers do
// not share a schema, so fields are probed by alias instead of unmarshaled
// into a fixed struct.
type Event map[string]any

// DecodeEvent parses body as a JSON object. A non-object or invalid body
// yields ok=false; such messages are dropped (and still acked) by handlers.
func DecodeEvent(body []byte) (Event, bool) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return nil, false
	}
	return Event(data), true
}

// StringField returns the first non-empty string value among the given keys.
func (e Event) StringField(keys ...string) string {
	for _, k := range keys {
		if s, ok := e[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// OrderID probes the accepted order-identifier aliases.
func (e Event) OrderID() string { return e.StringField("orderId", "id", "order_id") }

// UserID probes the accepted user-identifier aliases, falling back to the
// unknown-user sentinel.
func (e Event) UserID() string {
	if s := e.StringField("userId", "user_id", "user"); s != "" {
		return s
	}
	return UnknownUser
}
