package service

import (
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// RNG is the random source stored in state. *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Uint64() uint64
}

// NewRNG returns a deterministic generator for seed. A zero seed draws one
// from the wall clock.
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// rngReader exposes an RNG as an io.Reader so uuids follow the seed.
type rngReader struct {
	rng RNG
}

func (r rngReader) Read(p []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(p) {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}
