package realtime

import "sync"

// Event is one server-sent update: Name becomes the SSE event type and Data
// its payload.
type Event struct {
	Name string
	Data string
}

// Broadcaster fans events out to SSE subscribers.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	buffer int
}

// NewBroadcaster creates an empty broadcaster whose subscribers buffer up to
// 16 events.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs:   make(map[chan Event]struct{}),
		buffer: 16,
	}
}

// Subscribe registers a new subscriber and returns its event channel.
func (b *Broadcaster) Subscribe() chan Event {
	ch := make(chan Event, b.buffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers events, in order, to every subscriber and returns how many
// subscribers were reached. Events that do not fit a subscriber's buffer are
// dropped for that subscriber.
func (b *Broadcaster) Publish(events ...Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	reached := 0
	for ch := range b.subs {
		delivered := false
		for _, e := range events {
			select {
			case ch <- e:
				delivered = true
			default:
				// Lagging subscriber: the event is lost for it. Consumers resync
				// from state on later events.
			}
		}
		if delivered {
			reached++
		}
	}
	return reached
}

// Subscribers returns the number of active subscribers.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close unsubscribes everyone.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
