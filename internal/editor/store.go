package editor

import "sync"

// Store owns the current draft and notifies subscribers after every dispatch.
type Store struct {
	mu     sync.Mutex
	draft  Draft
	subs   map[int]func(Action, Draft)
	nextID int
}

// NewStore returns a store holding an empty draft.
func NewStore() *Store {
	return &Store{subs: map[int]func(Action, Draft){}}
}

// Dispatch reduces the action into the draft. Subscribers run after the lock
// is released, so they may read the store.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.mu.Lock()
	s.draft = Reduce(s.draft, a)
	snapshot := s.draft.clone()
	subs := make([]func(Action, Draft), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(a, snapshot)
	}
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// Subscribe registers fn for every future dispatch and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Action, Draft)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
