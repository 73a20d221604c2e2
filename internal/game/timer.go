package game

import (
	"sync"
	"time"
)

// Meter accumulates how long a side has spent thinking. It counts up; the
// settlement report wants totals, not a countdown.
type Meter struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	running     bool
}

func NewMeter() *Meter {
	return &Meter{}
}

func (m *Meter) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		m.lastStarted = time.Now()
		m.running = true
	}
}

func (m *Meter) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		m.elapsed += time.Since(m.lastStarted)
		m.running = false
	}
}

func (m *Meter) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return m.elapsed + time.Since(m.lastStarted)
	}
	return m.elapsed
}

func (m *Meter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.elapsed = 0
	m.running = false
}
