package wizard

import (
	"slices"
	"sync"
	"time"
)

// Store owns the wizard State and serialises every change through Reduce.
// Readers get immutable snapshots; Dispatch is the only writer.
type Store struct {
	mu          sync.Mutex
	state       *State
	observer    DispatchObserver
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(*State)
}

type StoreOption func(*Store)

// WithObserver reports every dispatch to obs.
func WithObserver(obs DispatchObserver) StoreOption {
	return func(s *Store) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// NewStore returns a store holding initial, or InitialState() when nil.
func NewStore(initial *State, opts ...StoreOption) *Store {
	if initial == nil {
		initial = InitialState()
	}
	s := &Store{
		state:    initial,
		observer: NoopDispatchObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot. Callers must not mutate it.
func (s *Store) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies actions in order and returns the resulting state.
// Subscribers are notified once, after the batch, if anything changed.
func (s *Store) Dispatch(actions ...Action) *State {
	s.mu.Lock()
	start := s.state
	for _, a := range actions {
		t := time.Now()
		next := Reduce(s.state, a)
		s.observer.ObserveDispatch(DispatchEvent{
			Action:   a.Type(),
			Changed:  next != s.state,
			Duration: time.Since(t),
			Suspects: len(next.FormData.Suspects),
		})
		s.state = next
	}
	current := s.state
	subs := make([]func(*State), 0, len(s.subscribers))
	if current != start {
		for _, sub := range s.subscribers {
			subs = append(subs, sub.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(current)
	}
	return current
}

// Subscribe registers fn to run after every state change. Subscribers run in
// registration order. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(*State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool { return sub.id == id })
	}
}
