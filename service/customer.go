package service

import (
	"github.com/google/uuid"
)

// Command computes an action from the current state. It replaces callback
// thunks: the payload is derived synchronously and the store dispatches the
// returned action when ok is true.
type Command func(getState func() *State) (a Action, ok bool)

// Thresholds for the customer draws.
const (
	jamesThreshold     = 0.5
	americanoThreshold = 0.3
	espressoThreshold  = 0.66
)

// NewCustomer returns a command drawing a random customer from the state RNG.
func NewCustomer() Command {
	return func(getState func() *State) (Action, bool) {
		s := getState()
		if s == nil || s.RNG == nil {
			return Action{}, false
		}

		name := "Lily"
		if s.RNG.Float64() > jamesThreshold {
			name = "James"
		}

		drink := Cappuccino
		switch r := s.RNG.Float64(); {
		case r < americanoThreshold:
			drink = Americano
		case r < espressoThreshold:
			drink = Espresso
		}

		id, err := uuid.NewRandomFromReader(rngReader{rng: s.RNG})
		if err != nil {
			return Action{}, false
		}

		return CustomerArrived(Customer{ID: id, Name: name, Wants: OrderFor(drink)}), true
	}
}
