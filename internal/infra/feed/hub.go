// Package feed provides the in-process broadcast hub backing live client streams.
package feed

import (
	"log/slog"
	"sync"
)

// Hub fans a change signal out to every connected stream. Signals carry no
// payload; subscribers re-read their view after each wake-up, so bursts of
// mutations coalesce into a single refresh per subscriber.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]chan struct{}
	nextID      uint64
	logger      *slog.Logger
}

// NewHub creates a broadcast hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uint64]chan struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new stream and returns its signal channel together
// with a cancel function. Cancel is idempotent and must be called when the
// stream ends so the hub releases the slot.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	// Buffer of one lets Broadcast stay non-blocking while a pending
	// signal is still unconsumed.
	ch := make(chan struct{}, 1)
	h.subscribers[id] = ch

	h.logger.Debug("Feed subscriber added",
		slog.Uint64("subscriber_id", id),
		slog.Int("subscriber_count", len(h.subscribers)),
	)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.subscribers, id)

			h.logger.Debug("Feed subscriber removed",
				slog.Uint64("subscriber_id", id),
				slog.Int("subscriber_count", len(h.subscribers)),
			)
		})
	}

	return ch, cancel
}

// Broadcast wakes every subscriber. A subscriber that already has a pending
// signal is skipped; it will refresh once and see all accumulated changes.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount reports the number of active streams.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers)
}
