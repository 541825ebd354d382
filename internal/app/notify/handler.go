package notify

import (
	"food-delivery/internal/common/logger"
	"food-delivery/internal/domain"
)

// SubscribedKeys are the routing keys turned into user notifications.
var SubscribedKeys = []string{
	domain.KeyOrderPlaced,
	domain.KeyOrderAssigned,
	domain.KeyDeliveryUpdate,
	domain.KeyOrderDelivered,
}

// EventHandler maps any routed event into a notification record.
type EventHandler struct {
	store *Store
	lg    *logger.Logger
}

func NewEventHandler(store *Store, lg *logger.Logger) *EventHandler {
	return &EventHandler{store: store, lg: lg}
}

// Handle appends one notification per parseable event. Bodies that do not
// decode are dropped; the subscribe loop still acks them. Events with no
// identifiable user land under the unknown_user sentinel.
func (h *EventHandler) Handle(routingKey string, body []byte) {
	data, ok := domain.DecodeEvent(body)
	if !ok {
		h.lg.Error("notification_event_unparseable", nil, map[string]any{"routing_key": routingKey})
		return
	}

	userID := data.UserID()
	h.store.Append(userID, domain.Notification{
		UserID: userID,
		Payload: domain.NotificationPayload{
			Title:      "Event " + routingKey,
			Message:    data,
			RoutingKey: routingKey,
		},
		SentAt:    domain.NowMillis(),
		Delivered: true, // transport is mocked
		Transport: domain.MockTransport,
	})
	h.lg.Debug("notification_sent", map[string]any{"user_id": userID, "routing_key": routingKey})
}
