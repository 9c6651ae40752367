package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies monotonic timestamps to the loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

const (
	defaultUpdatePeriod = 100 * time.Millisecond
	defaultDrawPeriod   = 100 * time.Millisecond
	defaultFrameRate    = 60
)

// LoopConfig tunes the fixed-timestep loop.
type LoopConfig struct {
	UpdatePeriod time.Duration // Fixed simulation step
	DrawPeriod   time.Duration // Minimum time between draw callbacks
	FrameRate    int           // Frames per second driven by Run
	MaxCatchup   int           // Cap on update steps per frame (0 is unlimited)
	Clock        Clock

	Update func(dt time.Duration) // Called once per consumed update period
	Draw   func(interp float64)   // Called with the position between updates, in [0,1]
}

// Loop accumulates frame time and fires fixed-size updates and rate-limited
// draws. Frame and Stop may be called from different goroutines; the
// callbacks always run on the goroutine calling Frame.
type Loop struct {
	config LoopConfig

	started   bool
	last      time.Time
	updateAcc time.Duration
	drawAcc   time.Duration

	stopped  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
}

// NewLoop validates cfg and fills in defaults.
func NewLoop(cfg LoopConfig) (*Loop, error) {
	if cfg.Update == nil {
		return nil, ErrNoUpdate
	}
	if cfg.UpdatePeriod == 0 {
		cfg.UpdatePeriod = defaultUpdatePeriod
	}
	if cfg.DrawPeriod == 0 {
		cfg.DrawPeriod = defaultDrawPeriod
	}
	if cfg.UpdatePeriod < 0 || cfg.DrawPeriod < 0 {
		return nil, ErrBadPeriod
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = defaultFrameRate
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	return &Loop{config: cfg, stop: make(chan struct{})}, nil
}

// Frame processes one animation frame observed at now. The first frame only
// records the baseline.
func (l *Loop) Frame(now time.Time) {
	if l.stopped.Load() {
		return
	}
	if !l.started {
		l.started = true
		l.last = now
		return
	}

	elapsed := max(now.Sub(l.last), 0)
	l.last = now
	if l.config.MaxCatchup > 0 {
		elapsed = min(elapsed, l.config.UpdatePeriod*time.Duration(l.config.MaxCatchup))
	}
	l.updateAcc += elapsed
	l.drawAcc += elapsed

	for l.updateAcc >= l.config.UpdatePeriod {
		l.config.Update(l.config.UpdatePeriod)
		l.updateAcc -= l.config.UpdatePeriod
		if l.stopped.Load() {
			return
		}
	}

	if l.drawAcc >= l.config.DrawPeriod {
		l.drawAcc %= l.config.DrawPeriod
		if l.config.Draw != nil {
			l.config.Draw(l.Interpolation())
		}
	}
}

// Interpolation reports how far the carried time is toward the next update.
func (l *Loop) Interpolation() float64 {
	interp := float64(l.updateAcc) / float64(l.config.UpdatePeriod)
	return min(max(interp, 0), 1)
}

// Residual returns the update time carried into the next frame.
func (l *Loop) Residual() time.Duration {
	return l.updateAcc
}

// Run feeds frames from a ticker until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(l.config.FrameRate))
	defer ticker.Stop()

	l.Frame(l.config.Clock.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stop:
			return
		case <-ticker.C:
			l.Frame(l.config.Clock.Now())
		}
	}
}

// Stop halts all future updates and draws. It cannot be undone.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.stop)
	})
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}
