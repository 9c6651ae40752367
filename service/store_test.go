package service

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(&StoreConfig{Initial: newTestState()})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestNewStoreRequiresInitialState(t *testing.T) {
	if _, err := NewStore(&StoreConfig{}); err != ErrNoInitialState {
		t.Fatalf("expected ErrNoInitialState, got %v", err)
	}
}

func TestStoreDispatchNotifiesInOrder(t *testing.T) {
	store := newTestStore(t)
	var calls []string
	store.Subscribe(func() {
		if !store.GetState().Debug {
			t.Fatal("listener ran before state was replaced")
		}
		calls = append(calls, "first")
	})
	store.Subscribe(func() { calls = append(calls, "second") })

	store.Dispatch(Action{Type: DebugToggle})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("unexpected notification order %v", calls)
	}
}

func TestStoreUnsubscribe(t *testing.T) {
	store := newTestStore(t)
	count := 0
	unsubscribe := store.Subscribe(func() { count++ })
	store.Dispatch(Action{Type: DebugToggle})
	unsubscribe()
	store.Dispatch(Action{Type: DebugToggle})

	if count != 1 {
		t.Fatalf("expected one notification, got %d", count)
	}
}

func TestStoreUnknownActionKeepsState(t *testing.T) {
	store := newTestStore(t)
	before := store.GetState()
	notified := false
	store.Subscribe(func() { notified = true })

	store.Dispatch(Action{Type: 77})

	if store.GetState() != before {
		t.Fatal("unknown action replaced the state")
	}
	if !notified {
		t.Fatal("subscribers should still run after every dispatch")
	}
}

func TestStoreDispatchCommand(t *testing.T) {
	store := newTestStore(t)
	store.DispatchCommand(NewCustomer())
	store.DispatchCommand(func(func() *State) (Action, bool) { return Action{}, false })
	store.DispatchCommand(nil)

	if n := len(store.GetState().Customers); n != 1 {
		t.Fatalf("expected one customer, got %d", n)
	}
}
