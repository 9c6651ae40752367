package i

import (
	"context"
	"time"
)

// GameLoop drives the simulation.
type GameLoop interface {
	// Frame processes one animation frame observed at the given time.
	Frame(time.Time)

	// Run feeds frames until the context ends or the loop stops.
	Run(context.Context)

	// Stop halts all future updates and draws.
	Stop()

	Stopped() bool
}
