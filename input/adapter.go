// Package input translates raw key events into store actions.
package input

import (
	"errors"

	"github.com/beka-birhanu/coffee-shop/service"
	"github.com/beka-birhanu/coffee-shop/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
)

// Key identifies the keys the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyComma
	KeyEscape
)

// KeyEvent is a key transition with the modifiers held at the time.
type KeyEvent struct {
	Key   Key
	Down  bool // false on release
	Meta  bool
	Shift bool
}

var ErrMissingDependency = errors.New("input adapter needs a store and a loop")

// Adapter dispatches actions for key events.
type Adapter struct {
	store  i.GameStore
	loop   i.GameLoop
	logger general_i.Logger
}

// Config holds the adapter dependencies.
type Config struct {
	Store  i.GameStore
	Loop   i.GameLoop
	Logger general_i.Logger
}

// NewAdapter wires an adapter to a store and the loop it may stop.
func NewAdapter(c *Config) (*Adapter, error) {
	if c.Store == nil || c.Loop == nil {
		return nil, ErrMissingDependency
	}
	return &Adapter{store: c.Store, loop: c.Loop, logger: c.Logger}, nil
}

// Handle translates ev and reports whether it was consumed.
func (a *Adapter) Handle(ev KeyEvent) bool {
	if !ev.Down {
		if ev.Key == KeyArrowRight {
			a.store.Dispatch(service.Action{Type: service.ActivateCease})
			return true
		}
		return false
	}

	switch ev.Key {
	case KeyEscape:
		a.loop.Stop()
		if a.logger != nil {
			a.logger.Info("halt in the name of science")
		}
	case KeyArrowUp:
		a.store.Dispatch(service.Action{Type: service.SwipeUp})
	case KeyArrowDown:
		a.store.Dispatch(service.Action{Type: service.SwipeDown})
	case KeyArrowRight:
		// TODO: reject with an error cue when the station cannot take the player.
		if !a.store.GetState().Player.IsActivating {
			a.store.Dispatch(service.Action{Type: service.Activate})
		}
	case KeyArrowLeft:
		// Reserved for picking cups up; swallowed so it never scrolls.
	case KeyComma:
		if !ev.Meta || !ev.Shift {
			return false
		}
		a.store.Dispatch(service.Action{Type: service.DebugToggle})
	default:
		return false
	}
	return true
}
