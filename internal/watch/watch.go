// Package watch provides in-process change notification for the per-user
// collections. The UI layer of the original system observed query results as
// streams; here that is an explicit listener registration: services call
// Notify after every successful mutation and subscribers re-read the
// collection on each tick.
package watch

import "sync"

// Collection names events by the table they concern.
type Collection string

const (
	Players   Collection = "players"
	Matches   Collection = "matches"
	Trainings Collection = "trainings"
)

type key struct {
	userID     string
	collection Collection
}

// Hub fans out change ticks to subscribers keyed by (user, collection).
type Hub struct {
	mu   sync.Mutex
	subs map[key][]chan struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[key][]chan struct{})}
}

// Subscribe registers interest in one user's collection. The returned channel
// receives a tick after every mutation; cancel unregisters it and closes the
// channel.
func (h *Hub) Subscribe(userID string, c Collection) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	k := key{userID: userID, collection: c}

	h.mu.Lock()
	h.subs[k] = append(h.subs[k], ch)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		chans := h.subs[k]
		for i, s := range chans {
			if s == ch {
				h.subs[k] = append(chans[:i], chans[i+1:]...)
				close(ch)
				break
			}
		}
		if len(h.subs[k]) == 0 {
			delete(h.subs, k)
		}
	}
	return ch, cancel
}

// Notify wakes every subscriber of the user's collection. The tick is
// coalescing: a subscriber that has not drained its pending tick is not
// blocked on and receives no additional one.
func (h *Hub) Notify(userID string, c Collection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[key{userID: userID, collection: c}] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
