package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	FrameInterval time.Duration
}

// DefaultConfig returns a 30 fps frame cadence.
func DefaultConfig() Config {
	return Config{FrameInterval: time.Second / 30}
}

// Engine interpolates a single value over time, such as the drawn share
// of the countdown ring.
type Engine struct {
	mu      sync.Mutex
	config  Config
	update  func(float64)
	cancel  context.CancelFunc
	current float64
}

// New creates an engine that reports every frame through update.
func New(config Config, initial float64, update func(float64)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	return &Engine{
		config:  config,
		update:  update,
		current: initial,
	}
}

// Sweep moves the value from its current position to target over duration.
// A running sweep is replaced.
func (engine *Engine) Sweep(ctx context.Context, target float64, duration time.Duration) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	from := engine.current
	engine.mu.Unlock()

	go engine.run(runCtx, from, target, duration)
}

// Freeze halts the active sweep and keeps the value where it is.
func (engine *Engine) Freeze() float64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.cancelLocked()
	return engine.current
}

// Jump halts the active sweep and sets the value immediately.
func (engine *Engine) Jump(value float64) {
	engine.mu.Lock()
	engine.cancelLocked()
	engine.current = value
	engine.mu.Unlock()

	engine.update(value)
}

// Stop terminates any active sweep.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.cancelLocked()
}

// Current returns the last reported value.
func (engine *Engine) Current() float64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.current
}

func (engine *Engine) cancelLocked() {
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context, from, target float64, duration time.Duration) {
	start := time.Now()
	for {
		progress := 1.0
		if duration > 0 {
			progress = float64(time.Since(start)) / float64(duration)
			if progress > 1 {
				progress = 1
			}
		}
		if !engine.report(ctx, from+(target-from)*progress) {
			return
		}
		if progress >= 1 {
			return
		}
		if !sleepWithContext(ctx, engine.config.FrameInterval) {
			return
		}
	}
}

// report publishes value unless ctx was cancelled first.
func (engine *Engine) report(ctx context.Context, value float64) bool {
	engine.mu.Lock()
	if ctx.Err() != nil {
		engine.mu.Unlock()
		return false
	}
	engine.current = value
	engine.mu.Unlock()

	engine.update(value)
	return true
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
