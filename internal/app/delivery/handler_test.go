package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/domain"
)

func newTestHandler() (*OrderHandler, *Store, *recordingBus) {
	store := NewStore()
	bus := &recordingBus{}
	sim := NewSimulator(store, bus, logger.New("test"))
	sim.StepInterval = time.Millisecond
	return NewOrderHandler(store, sim, logger.New("test")), store, bus
}

func TestOrderHandlerDropsBadMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken json", body: `{"orderId":`},
		{name: "not an object", body: `"o1"`},
		{name: "missing order id", body: `{"customer":"bob"}`},
		{name: "order id wrong type", body: `{"orderId":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store, bus := newTestHandler()
			h.Handle(domain.KeyOrderPlaced, []byte(tt.body))
			assert.Empty(t, store.List(), "bad message must not mutate the store")
			assert.Empty(t, bus.byKey(domain.KeyOrderAssigned))
		})
	}
}

func TestOrderHandlerAcceptsIDAliases(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "orderId", body: `{"orderId":"o1"}`, want: "o1"},
		{name: "id", body: `{"id":"o2"}`, want: "o2"},
		{name: "order_id", body: `{"order_id":"o3"}`, want: "o3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store, _ := newTestHandler()
			h.Handle(domain.KeyOrderPlaced, []byte(tt.body))
			_, ok := store.Get(tt.want)
			assert.True(t, ok)
		})
	}
}

func TestOrderHandlerUsesPlaceholderRoute(t *testing.T) {
	h, store, _ := newTestHandler()
	// geo fields in the event are intentionally ignored
	h.Handle(domain.KeyOrderPlaced, []byte(`{"orderId":"o1","start":[5,5],"dest":[6,6]}`))

	a, ok := store.Get("o1")
	require.True(t, ok)
	assert.Equal(t, defaultStart, a.Start)
	assert.Equal(t, defaultDest, a.Dest)
}

func TestOrderHandlerRunsDeliveryToCompletion(t *testing.T) {
	h, store, bus := newTestHandler()
	h.Handle(domain.KeyOrderPlaced, []byte(`{"orderId":"o1"}`))

	require.Eventually(t, func() bool {
		a, ok := store.Get("o1")
		return ok && a.Status == domain.StatusDelivered
	}, 2*time.Second, time.Millisecond)

	a, _ := store.Get("o1")
	assert.Equal(t, 100, a.Progress)
	assert.Len(t, bus.byKey(domain.KeyOrderAssigned), 1)
	assert.Len(t, bus.byKey(domain.KeyDeliveryUpdate), 10)
}
