// Package health tracks the outcome of the latest chat gateway probe.
package health

import (
	"sync"
	"time"
)

// Snapshot is the state of the latest probe.
type Snapshot struct {
	Checked   bool          `json:"checked"`
	Healthy   bool          `json:"healthy"`
	CheckedAt time.Time     `json:"checked_at"`
	Latency   time.Duration `json:"latency"`
	Error     string        `json:"error,omitempty"`
}

// Status is safe for concurrent use. The zero value reports healthy until the
// first probe is recorded.
type Status struct {
	mu   sync.RWMutex
	last Snapshot
}

// Record stores the result of a probe.
func (s *Status) Record(at time.Time, latency time.Duration, err error) {
	snap := Snapshot{Checked: true, Healthy: err == nil, CheckedAt: at, Latency: latency}
	if err != nil {
		snap.Error = err.Error()
	}
	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()
}

// Snapshot returns the latest probe result.
func (s *Status) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Ready reports whether no probe has failed since the last success.
func (s *Status) Ready() bool {
	snap := s.Snapshot()
	return !snap.Checked || snap.Healthy
}
