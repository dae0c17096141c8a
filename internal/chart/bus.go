package chart

import "sync"

type pointerListeners struct {
	move  func(x, y float64)
	leave func()
}

// PointerBus is the pie.PointerSource of a session: HTTP pointer commands are
// dispatched to whichever listener sets the chart has bound.
type PointerBus struct {
	mu        sync.Mutex
	next      int
	listeners map[int]pointerListeners
	left, top float64
}

// NewPointerBus returns a bus with no listeners and the origin at (0, 0).
func NewPointerBus() *PointerBus {
	return &PointerBus{listeners: make(map[int]pointerListeners)}
}

// BindPointer registers a listener set.
func (b *PointerBus) BindPointer(move func(x, y float64), leave func()) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.listeners[id] = pointerListeners{move: move, leave: leave}
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Origin returns the page position of the chart's top-left corner.
func (b *PointerBus) Origin() (float64, float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.left, b.top
}

// SetOrigin records where the chart sits on the page.
func (b *PointerBus) SetOrigin(left, top float64) {
	b.mu.Lock()
	b.left, b.top = left, top
	b.mu.Unlock()
}

// Move dispatches a pointer move to every bound listener set.
func (b *PointerBus) Move(x, y float64) {
	for _, l := range b.snapshot() {
		l.move(x, y)
	}
}

// Leave dispatches a pointer leave to every bound listener set.
func (b *PointerBus) Leave() {
	for _, l := range b.snapshot() {
		l.leave()
	}
}

// Bound returns the number of active listener sets.
func (b *PointerBus) Bound() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// snapshot lets listeners rebind while being dispatched.
func (b *PointerBus) snapshot() []pointerListeners {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]pointerListeners, 0, len(b.listeners))
	for _, l := range b.listeners {
		out = append(out, l)
	}
	return out
}

// SizeFeed is the pie.SizeSource of a session, fed by resize commands.
type SizeFeed struct {
	mu       sync.Mutex
	observer func(width, height float64)
}

// ObserveSize installs fn as the single observer.
func (f *SizeFeed) ObserveSize(fn func(width, height float64)) func() {
	f.mu.Lock()
	f.observer = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.observer = nil
		f.mu.Unlock()
	}
}

// Report forwards a new size to the observer, if any.
func (f *SizeFeed) Report(width, height float64) {
	f.mu.Lock()
	fn := f.observer
	f.mu.Unlock()
	if fn != nil {
		fn(width, height)
	}
}
