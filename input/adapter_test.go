package input

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/coffee-shop/service"
)

type recordingStore struct {
	state   *service.State
	actions []service.ActionType
}

func (s *recordingStore) GetState() *service.State { return s.state }

func (s *recordingStore) Dispatch(a service.Action) {
	s.actions = append(s.actions, a.Type)
	s.state = service.Reduce(s.state, a)
}

func (s *recordingStore) DispatchCommand(cmd service.Command) {
	if a, ok := cmd(s.GetState); ok {
		s.Dispatch(a)
	}
}

func (s *recordingStore) Subscribe(func()) func() { return func() {} }

type stubLoop struct {
	stopped bool
}

func (l *stubLoop) Frame(time.Time)         {}
func (l *stubLoop) Run(ctx context.Context) {}
func (l *stubLoop) Stop()                   { l.stopped = true }
func (l *stubLoop) Stopped() bool           { return l.stopped }

func newTestAdapter(t *testing.T) (*Adapter, *recordingStore, *stubLoop) {
	t.Helper()
	store := &recordingStore{state: service.InitialState(service.Screen{}, 10, 16, service.NewRNG(1))}
	loop := &stubLoop{}
	adapter, err := NewAdapter(&Config{Store: store, Loop: loop})
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	return adapter, store, loop
}

func TestNewAdapterRequiresDependencies(t *testing.T) {
	if _, err := NewAdapter(&Config{}); err != ErrMissingDependency {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
}

func TestHandleArrowKeys(t *testing.T) {
	adapter, store, _ := newTestAdapter(t)

	adapter.Handle(KeyEvent{Key: KeyArrowDown, Down: true})
	adapter.Handle(KeyEvent{Key: KeyArrowUp, Down: true})
	adapter.Handle(KeyEvent{Key: KeyArrowRight, Down: true})
	adapter.Handle(KeyEvent{Key: KeyArrowRight, Down: false})

	want := []service.ActionType{service.SwipeDown, service.SwipeUp, service.Activate, service.ActivateCease}
	if len(store.actions) != len(want) {
		t.Fatalf("expected %v, got %v", want, store.actions)
	}
	for i := range want {
		if store.actions[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, store.actions)
		}
	}
}

func TestHandleActivateGuardedByState(t *testing.T) {
	adapter, store, _ := newTestAdapter(t)

	adapter.Handle(KeyEvent{Key: KeyArrowRight, Down: true})
	adapter.Handle(KeyEvent{Key: KeyArrowRight, Down: true})

	if len(store.actions) != 1 {
		t.Fatalf("expected a single ACTIVATE for key repeat, got %v", store.actions)
	}
}

func TestHandleDebugChord(t *testing.T) {
	adapter, store, _ := newTestAdapter(t)

	if adapter.Handle(KeyEvent{Key: KeyComma, Down: true, Shift: true}) {
		t.Fatal("comma without meta should not be consumed")
	}
	adapter.Handle(KeyEvent{Key: KeyComma, Down: true, Meta: true, Shift: true})

	if !store.state.Debug {
		t.Fatal("expected debug toggled on")
	}
}

func TestHandleEscapeStopsLoop(t *testing.T) {
	adapter, store, loop := newTestAdapter(t)

	if !adapter.Handle(KeyEvent{Key: KeyEscape, Down: true}) {
		t.Fatal("expected escape to be consumed")
	}
	if !loop.stopped {
		t.Fatal("expected loop stopped")
	}
	if len(store.actions) != 0 {
		t.Fatalf("escape should not dispatch, got %v", store.actions)
	}
}

func TestHandleIgnoresOtherReleases(t *testing.T) {
	adapter, store, _ := newTestAdapter(t)

	if adapter.Handle(KeyEvent{Key: KeyArrowUp, Down: false}) {
		t.Fatal("releasing arrow up should not be consumed")
	}
	if adapter.Handle(KeyEvent{Key: KeyUnknown, Down: true}) {
		t.Fatal("unknown key should not be consumed")
	}
	if len(store.actions) != 0 {
		t.Fatalf("expected no dispatches, got %v", store.actions)
	}
}
