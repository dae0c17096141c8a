package chart

import (
	"crypto/rand"
	"encoding/base32"
	"log"
	"strings"

	"piechart/pkg/pie"
	"piechart/pkg/realtime"
)

// Store holds chart sessions and delegates to realtime.RoomStore for lookup
// and broadcast.
type Store struct {
	r    *realtime.RoomStore[*Session]
	opts Options
}

// NewStore creates an in-memory session store.
func NewStore(opts Options) *Store {
	return &Store{r: realtime.NewRoomStore[*Session](), opts: opts}
}

// CreateChart validates items, starts a session and registers its broadcaster.
func (s *Store) CreateChart(items []pie.Item) (*Session, error) {
	id := newID()
	session, err := NewSession(id, items, s.opts)
	if err != nil {
		return nil, err
	}
	room := s.r.Create(id, session)
	hub := room.Hub()
	session.mu.Lock()
	session.publish = hub.Publish
	session.mu.Unlock()
	log.Printf("chart created id=%s items=%d interactive=%t", id, len(items), session.Interactive())
	return session, nil
}

// GetChart returns a session by ID if it exists.
func (s *Store) GetChart(id string) (*Session, bool) {
	room, ok := s.r.Get(id)
	if !ok {
		return nil, false
	}
	return room.State, true
}

// DeleteChart closes a session and disconnects its subscribers.
func (s *Store) DeleteChart(id string) bool {
	session, ok := s.GetChart(id)
	if !ok {
		return false
	}
	session.Close()
	return s.r.Delete(id)
}

// Broadcaster returns the SSE broadcaster for a session.
func (s *Store) Broadcaster(id string) (*realtime.Broadcaster, bool) {
	return s.r.Broadcaster(id)
}

// IDs lists the live sessions.
func (s *Store) IDs() []string {
	return s.r.IDs()
}

func newID() string {
	// 10 bytes -> 16 chars of base32, short and url-safe.
	buf := make([]byte, 10)
	_, _ = rand.Read(buf)
	encoder := base32.StdEncoding.WithPadding(base32.NoPadding)
	return strings.ToLower(encoder.EncodeToString(buf))
}
