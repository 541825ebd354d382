package domain

import "time"

// Status is the delivery lifecycle state of an assignment.
// Transitions are strictly linear: CREATED -> ASSIGNED -> IN_TRANSIT -> DELIVERED.
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusAssigned  Status = "ASSIGNED"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
)

// Coordinates is a [lat, lng] pair. Serialized as a JSON array.
type Coordinates [2]float64

// Assignment is the per-order delivery record. Owned by the assignment
// store; handlers and the simulator only see copies.
type Assignment struct {
	OrderID   string      `json:"orderId"`
	Status    Status      `json:"status"`
	RiderID   *string     `json:"rider_id"`
	Location  Coordinates `json:"location"`
	Start     Coordinates `json:"start"`
	Dest      Coordinates `json:"dest"`
	Progress  int         `json:"progress"`
	CreatedAt int64       `json:"created_at"` // ms since epoch
}

// Notification is one per-user record derived from a routed event.
// Transport is always the mock channel; Delivered is therefore always true.
type Notification struct {
	UserID    string              `json:"userId"`
	Payload   NotificationPayload `json:"payload"`
	SentAt    int64               `json:"sent_at"` // ms since epoch
	Delivered bool                `json:"delivered"`
	Transport string              `json:"transport"`
}

type NotificationPayload struct {
	Title      string         `json:"title"`
	Message    map[string]any `json:"message"`
	RoutingKey string         `json:"routingKey"`
}

const MockTransport = "mock"

// UnknownUser is the sentinel user for events carrying no identifiable user.
const UnknownUser = "unknown_user"

func NowMillis() int64 { return time.Now().UnixMilli() }
