package runner

import (
	"sync"
	"time"
)

// Ticker is the one-second tick source of a running session.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type clockTicker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker backed by time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return &clockTicker{t: time.NewTicker(d)}
}

func (c *clockTicker) C() <-chan time.Time { return c.t.C }
func (c *clockTicker) Stop() { c.t.Stop() }

// ManualTicker delivers ticks only when Tick is called.
type ManualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

func (m *ManualTicker) Stop() {
	m.once.Do(func() { close(m.stopped) })
}

// Tick blocks until the tick is received or the ticker is stopped. It reports
// whether the tick was delivered.
func (m *ManualTicker) Tick() bool {
	select {
	case <-m.stopped:
		return false
	default:
	}
	select {
	case m.ch <- time.Now():
		return true
	case <-m.stopped:
		return false
	}
}

// Stopped reports whether Stop has been called.
func (m *ManualTicker) Stopped() bool {
	select {
	case <-m.stopped:
		return true
	default:
		return false
	}
}
