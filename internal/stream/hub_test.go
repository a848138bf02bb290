package stream

import (
	"context"
	"testing"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func event(storeID string, typ domain.BookingEventType) domain.BookingEvent {
	return domain.NewBookingEvent(typ, &domain.Booking{ID: "b1", StoreID: storeID})
}

func TestHub_DeliversToStoreSubscribers(t *testing.T) {
	hub := NewHub(4, newTestLogger(t))

	ch1, unsub1 := hub.Subscribe("s1")
	defer unsub1()
	ch2, unsub2 := hub.Subscribe("s2")
	defer unsub2()

	hub.Publish(context.Background(), event("s1", domain.EventBookingCreated))

	select {
	case e := <-ch1:
		assert.Equal(t, domain.EventBookingCreated, e.Type)
		assert.Equal(t, "s1", e.StoreID)
	default:
		t.Fatal("subscriber of s1 got nothing")
	}

	select {
	case e := <-ch2:
		t.Fatalf("subscriber of s2 got %v", e)
	default:
	}
}

func TestHub_PublishDoesNotBlockOnFullBuffer(t *testing.T) {
	hub := NewHub(1, newTestLogger(t))

	ch, unsub := hub.Subscribe("s1")
	defer unsub()

	hub.Publish(context.Background(), event("s1", domain.EventBookingCreated))
	hub.Publish(context.Background(), event("s1", domain.EventBookingApproved))

	e := <-ch
	assert.Equal(t, domain.EventBookingCreated, e.Type)
	assert.Len(t, ch, 0)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(1, newTestLogger(t))

	ch, unsub := hub.Subscribe("s1")
	require.Equal(t, 1, hub.Subscribers("s1"))

	unsub()
	unsub()

	_, ok := <-ch
	assert.False(t, ok, "channel must be closed")
	assert.Equal(t, 0, hub.Subscribers("s1"))

	hub.Publish(context.Background(), event("s1", domain.EventBookingCreated))
}
