package service

import "time"

// Spawner adds customers to the queue at a steady pace of game time.
type Spawner struct {
	store    *Store
	interval time.Duration
	maxQueue int
	acc      time.Duration
}

// NewSpawner returns a spawner dispatching through store. A zero interval
// disables it; a zero maxQueue leaves the queue unbounded.
func NewSpawner(store *Store, interval time.Duration, maxQueue int) (*Spawner, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if interval < 0 {
		return nil, ErrBadPeriod
	}
	return &Spawner{store: store, interval: interval, maxQueue: maxQueue}, nil
}

// Advance consumes dt of game time and dispatches a customer for every
// elapsed interval while the queue has room.
func (s *Spawner) Advance(dt time.Duration) {
	if s.interval == 0 {
		return
	}
	s.acc += dt
	for s.acc >= s.interval {
		s.acc -= s.interval
		if s.maxQueue > 0 && len(s.store.GetState().Customers) >= s.maxQueue {
			continue
		}
		s.store.DispatchCommand(NewCustomer())
	}
}
