package service

import (
	"testing"
)

func TestNewCustomerThresholds(t *testing.T) {
	cases := []struct {
		draws []float64
		name  string
		drink Drink
	}{
		{draws: []float64{0.9, 0.1}, name: "James", drink: Americano},
		{draws: []float64{0.5, 0.3}, name: "Lily", drink: Espresso},
		{draws: []float64{0.2, 0.65}, name: "Lily", drink: Espresso},
		{draws: []float64{0.51, 0.66}, name: "James", drink: Cappuccino},
	}

	for _, tc := range cases {
		s := newTestState()
		s.RNG = &seqRNG{floats: tc.draws}

		a, ok := NewCustomer()(func() *State { return s })
		if !ok {
			t.Fatalf("draws %v: command produced no action", tc.draws)
		}
		if a.Type != NewCustomerArrived {
			t.Fatalf("draws %v: expected NEW_CUSTOMER, got %s", tc.draws, a.Type)
		}
		c := a.Data.(Customer)
		if c.Name != tc.name || c.Wants.Type != tc.drink || c.Wants.Name != tc.drink.Name() {
			t.Fatalf("draws %v: got %+v, want %s/%s", tc.draws, c, tc.name, tc.drink.Name())
		}
	}
}

func TestNewCustomerDeterministicForSeed(t *testing.T) {
	draw := func() Customer {
		s := newTestState()
		s.RNG = NewRNG(7)
		a, _ := NewCustomer()(func() *State { return s })
		return a.Data.(Customer)
	}

	first, second := draw(), draw()
	if first != second {
		t.Fatalf("expected identical customers for the same seed, got %+v and %+v", first, second)
	}
}

func TestNewCustomerWithoutRNG(t *testing.T) {
	s := newTestState()
	s.RNG = nil
	if _, ok := NewCustomer()(func() *State { return s }); ok {
		t.Fatal("expected no action without an RNG")
	}
}
