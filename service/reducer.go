package service

import (
	"slices"
	"time"
)

// Reduce maps the current state and an action to the next state. It is the
// only place state changes. When an action has no effect the input pointer is
// returned unchanged.
func Reduce(s *State, a Action) *State {
	switch a.Type {
	case SwipeUp:
		return movePlayer(s, -1)
	case SwipeDown:
		return movePlayer(s, 1)
	case Activate:
		return activate(s)
	case ActivateCease:
		return ceaseActivation(s)
	case DebugToggle:
		next := s.clone()
		next.Debug = !s.Debug
		return next
	case NewCustomerArrived:
		c, ok := a.Data.(Customer)
		if !ok {
			return s
		}
		next := s.clone()
		next.Customers = append(next.Customers, c)
		return next
	case GameTick:
		dt, ok := a.Data.(time.Duration)
		if !ok || dt <= 0 {
			return s
		}
		return advanceTimers(s, dt)
	default:
		return s
	}
}

// movePlayer shifts the player between station rows. Rows clamp at both ends
// and the player cannot leave a station while activating it.
func movePlayer(s *State, delta int) *State {
	if s.Player.IsActivating || len(s.Stations) == 0 {
		return s
	}
	row := min(max(s.Player.Row+delta, 0), len(s.Stations)-1)
	if row == s.Player.Row {
		return s
	}
	next := s.clone()
	next.Player.Row = row
	return next
}

func activate(s *State) *State {
	if s.Player.IsActivating {
		return s
	}
	next := s.clone()
	next.Player.IsActivating = true

	row := next.Player.Row
	if row < 0 || row >= len(next.Stations) {
		return next
	}
	station := &next.Stations[row]
	if station.Ready {
		serve(next, station)
		return next
	}
	station.Timer.Active = true
	return next
}

// serve hands the ready cup to the first customer waiting for it. A cup
// nobody ordered stays on the counter.
func serve(s *State, station *Station) {
	i := slices.IndexFunc(s.Customers, func(c Customer) bool {
		return c.Wants.Type == station.Drink
	})
	if i < 0 {
		return
	}
	s.Customers = slices.Delete(s.Customers, i, i+1)
	s.Score++
	station.Ready = false
	station.Timer.Elapsed = 0
}

func ceaseActivation(s *State) *State {
	running := slices.ContainsFunc(s.Stations, func(st Station) bool { return st.Timer.Active })
	if !s.Player.IsActivating && !running {
		return s
	}
	next := s.clone()
	next.Player.IsActivating = false
	for i := range next.Stations {
		next.Stations[i].Timer.Active = false
	}
	return next
}

// advanceTimers moves every active timer forward by dt. Inactive timers are
// left alone; a tick with nothing running returns s itself.
func advanceTimers(s *State, dt time.Duration) *State {
	if !slices.ContainsFunc(s.Stations, func(st Station) bool { return st.Timer.Active }) {
		return s
	}
	next := s.clone()
	for i := range next.Stations {
		st := &next.Stations[i]
		if !st.Timer.Active {
			continue
		}
		st.Timer.Elapsed += dt
		if st.Timer.Elapsed >= st.Timer.Duration {
			st.Timer.Elapsed = st.Timer.Duration
			st.Timer.Active = false
			st.Ready = true
		}
	}
	return next
}
