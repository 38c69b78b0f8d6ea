package pomodoro

import (
	"sync"
	"time"
)

// TickSource invokes a callback at a fixed cadence until stopped.
// Start must not call onTick synchronously.
type TickSource interface {
	Start(interval time.Duration, onTick func())
	Stop()
}

// Ticker is a TickSource backed by time.Ticker.
type Ticker struct {
	mu     sync.Mutex
	stopCh chan struct{}
}

// NewTicker creates an idle Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start launches the ticking loop. Calling Start while active is a no-op.
func (ticker *Ticker) Start(interval time.Duration, onTick func()) {
	if interval <= 0 {
		interval = time.Second
	}

	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopCh != nil {
		return
	}
	stopCh := make(chan struct{})
	ticker.stopCh = stopCh

	go run(interval, stopCh, onTick)
}

// Stop ends the ticking loop. It does not wait for an in-flight callback,
// so it is safe to call from inside onTick.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopCh == nil {
		return
	}
	close(ticker.stopCh)
	ticker.stopCh = nil
}

// Active reports whether the loop is running.
func (ticker *Ticker) Active() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopCh != nil
}

func run(interval time.Duration, stopCh <-chan struct{}, onTick func()) {
	clock := time.NewTicker(interval)
	defer clock.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-clock.C:
			select {
			case <-stopCh:
				return
			default:
			}
			onTick()
		}
	}
}
