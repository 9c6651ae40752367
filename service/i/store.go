package i

import (
	"github.com/beka-birhanu/coffee-shop/service"
)

// GameStore is the state container seen by adapters.
type GameStore interface {
	// GetState returns the current state snapshot.
	GetState() *service.State

	// Dispatch applies an action and notifies subscribers.
	Dispatch(service.Action)

	// DispatchCommand computes an action from the current state and dispatches it.
	DispatchCommand(service.Command)

	// Subscribe registers a listener invoked after every dispatch.
	Subscribe(func()) func()
}
