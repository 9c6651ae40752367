package service

import "time"

// seqRNG replays fixed draws.
type seqRNG struct {
	floats []float64
	next   int
	u      uint64
}

func (r *seqRNG) Float64() float64 {
	v := r.floats[r.next%len(r.floats)]
	r.next++
	return v
}

func (r *seqRNG) Uint64() uint64 {
	r.u++
	return r.u
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestState() *State {
	return InitialState(Screen{Width: 320, Height: 240}, 10, 16, &seqRNG{floats: []float64{0.1}})
}
