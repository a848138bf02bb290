package stream

import (
	"context"
	"sync"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const defaultBuffer = 16

// Hub fans booking events out to per-store subscribers. Publish never
// blocks: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscriber]struct{}
	buffer int
	logger logger.Logger
}

type subscriber struct {
	ch   chan domain.BookingEvent
	once sync.Once
}

func NewHub(buffer int, logger logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[string]map[*subscriber]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a listener for the store's events. The returned
// function unsubscribes and closes the channel; it is safe to call twice.
func (h *Hub) Subscribe(storeID string) (<-chan domain.BookingEvent, func()) {
	sub := &subscriber{ch: make(chan domain.BookingEvent, h.buffer)}

	h.mu.Lock()
	if h.subs[storeID] == nil {
		h.subs[storeID] = make(map[*subscriber]struct{})
	}
	h.subs[storeID][sub] = struct{}{}
	h.mu.Unlock()

	return sub.ch, func() { h.unsubscribe(storeID, sub) }
}

func (h *Hub) Publish(ctx context.Context, event domain.BookingEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[event.StoreID] {
		select {
		case sub.ch <- event:
		default:
			h.logger.LogAttrs(ctx, logger.WarnLevel, "event dropped for slow subscriber",
				logger.String("store_id", event.StoreID),
				logger.String("type", string(event.Type)),
			)
		}
	}
}

// Subscribers returns the number of live subscriptions for the store.
func (h *Hub) Subscribers(storeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[storeID])
}

func (h *Hub) unsubscribe(storeID string, sub *subscriber) {
	sub.once.Do(func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.subs[storeID], sub)
		if len(h.subs[storeID]) == 0 {
			delete(h.subs, storeID)
		}
		close(sub.ch)
	})
}
