package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/domain"
)

// chanSink records mirrored notifications on a channel so tests can wait
// for the async mirror without sleeping.
type chanSink struct {
	inserted chan domain.Notification
	err      error
}

func newChanSink(err error) *chanSink {
	return &chanSink{inserted: make(chan domain.Notification, 16), err: err}
}

func (s *chanSink) Insert(_ context.Context, n domain.Notification) error {
	s.inserted <- n
	return s.err
}

func note(userID, title string) domain.Notification {
	return domain.Notification{
		UserID:    userID,
		Payload:   domain.NotificationPayload{Title: title, RoutingKey: domain.KeyDeliveryUpdate},
		SentAt:    domain.NowMillis(),
		Delivered: true,
		Transport: domain.MockTransport,
	}
}

func TestStoreAppendPreservesArrivalOrder(t *testing.T) {
	store := NewStore(nil, logger.New("test"))

	store.Append("u1", note("u1", "first"))
	store.Append("u1", note("u1", "second"))

	seq, ok := store.ListFor("u1")
	require.True(t, ok)
	require.Len(t, seq, 2)
	assert.Equal(t, "first", seq[0].Payload.Title)
	assert.Equal(t, "second", seq[1].Payload.Title)
	assert.LessOrEqual(t, seq[0].SentAt, seq[1].SentAt)
}

func TestStoreListForUnknownUser(t *testing.T) {
	store := NewStore(nil, logger.New("test"))
	_, ok := store.ListFor("nobody")
	assert.False(t, ok)
}

func TestStoreListAllFlattens(t *testing.T) {
	store := NewStore(nil, logger.New("test"))
	store.Append("u1", note("u1", "a"))
	store.Append("u1", note("u1", "b"))
	store.Append("u2", note("u2", "c"))

	all := store.ListAll()
	require.Len(t, all, 3)

	// intra-user order survives flattening
	var u1 []string
	for _, n := range all {
		if n.UserID == "u1" {
			u1 = append(u1, n.Payload.Title)
		}
	}
	assert.Equal(t, []string{"a", "b"}, u1)
}

func TestStoreMirrorsToSink(t *testing.T) {
	sink := newChanSink(nil)
	store := NewStore(sink, logger.New("test"))

	store.Append("u1", note("u1", "hello"))

	select {
	case n := <-sink.inserted:
		assert.Equal(t, "hello", n.Payload.Title)
	case <-time.After(time.Second):
		t.Fatal("notification was not mirrored to the sink")
	}
}

func TestStoreSinkFailureDoesNotAffectMemory(t *testing.T) {
	sink := newChanSink(errors.New("backend down"))
	store := NewStore(sink, logger.New("test"))

	store.Append("u1", note("u1", "hello"))

	select {
	case <-sink.inserted:
	case <-time.After(time.Second):
		t.Fatal("sink was never called")
	}
	seq, ok := store.ListFor("u1")
	require.True(t, ok)
	assert.Len(t, seq, 1)
}
