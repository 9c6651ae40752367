package service

import (
	"fmt"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
)

// Reducer maps a state and an action to the next state.
type Reducer func(*State, Action) *State

// Store holds the game state and is its single mutation path. It is not safe
// for concurrent use: dispatch, subscribers and reads all run on the loop
// goroutine. Dispatching from inside a subscriber is undefined.
type Store struct {
	reducer   Reducer
	state     *State
	listeners []*listener
	warned    map[ActionType]bool
	logger    general_i.Logger
}

type listener struct {
	fn func()
}

// StoreConfig holds the dependencies of a Store.
type StoreConfig struct {
	Reducer Reducer // Defaults to Reduce
	Initial *State
	Logger  general_i.Logger
}

// NewStore creates a store around the initial state.
func NewStore(c *StoreConfig) (*Store, error) {
	if c.Initial == nil {
		return nil, ErrNoInitialState
	}
	reducer := c.Reducer
	if reducer == nil {
		reducer = Reduce
	}
	return &Store{
		reducer: reducer,
		state:   c.Initial,
		warned:  make(map[ActionType]bool),
		logger:  c.Logger,
	}, nil
}

// GetState returns the current snapshot.
func (s *Store) GetState() *State {
	return s.state
}

// Dispatch applies the reducer and notifies subscribers in registration order.
func (s *Store) Dispatch(a Action) {
	if !a.Type.Known() && !s.warned[a.Type] {
		s.warned[a.Type] = true
		if s.logger != nil {
			s.logger.Warning(fmt.Sprintf("ignoring unknown action type %d", a.Type))
		}
	}

	s.state = s.reducer(s.state, a)

	for _, l := range s.listeners {
		l.fn()
	}
}

// DispatchCommand runs cmd against the current state and dispatches its action.
func (s *Store) DispatchCommand(cmd Command) {
	if cmd == nil {
		return
	}
	if a, ok := cmd(s.GetState); ok {
		s.Dispatch(a)
	}
}

// Subscribe registers fn to run after every dispatch. The returned func
// removes it.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	l := &listener{fn: fn}
	s.listeners = append(s.listeners, l)
	return func() {
		for i, existing := range s.listeners {
			if existing == l {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
