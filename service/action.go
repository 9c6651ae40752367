package service

import "time"

// ActionType names a signal the reducer understands.
type ActionType int

// Action types. Values outside this set are ignored by the reducer.
const (
	SwipeUp ActionType = iota + 1
	SwipeDown
	Activate
	ActivateCease
	DebugToggle
	NewCustomerArrived
	GameTick
)

var actionNames = map[ActionType]string{
	SwipeUp:            "SWIPE_UP",
	SwipeDown:          "SWIPE_DOWN",
	Activate:           "ACTIVATE",
	ActivateCease:      "ACTIVATE_CEASE",
	DebugToggle:        "DEBUG_TOGGLE",
	NewCustomerArrived: "NEW_CUSTOMER",
	GameTick:           "GAME_TICK",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Known reports whether t belongs to the action vocabulary.
func (t ActionType) Known() bool {
	_, ok := actionNames[t]
	return ok
}

// Action is a transient signal consumed once by the reducer.
// Data carries a time.Duration for GameTick and a Customer for NewCustomerArrived.
type Action struct {
	Type ActionType
	Data any
}

// Tick builds a GameTick action carrying the elapsed step.
func Tick(dt time.Duration) Action {
	return Action{Type: GameTick, Data: dt}
}

// CustomerArrived builds a NewCustomerArrived action for c.
func CustomerArrived(c Customer) Action {
	return Action{Type: NewCustomerArrived, Data: c}
}
