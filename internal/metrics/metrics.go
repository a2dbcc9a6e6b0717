// Package metrics counts lifecycle transaction outcomes.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics tracks transaction statistics using atomic operations for thread-safety
type Metrics struct {
	Committed       atomic.Int64
	RolledBack      atomic.Int64
	Rejected        atomic.Int64 // rolled back with a domain error kind
	StorageFailures atomic.Int64
	StaleCards      atomic.Int64
	StartTime       time.Time
}

// New creates a new Metrics instance
func New() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncCommitted increments the committed scopes counter
func (m *Metrics) IncCommitted() {
	m.Committed.Add(1)
}

// IncRolledBack increments the rolled back scopes counter
func (m *Metrics) IncRolledBack() {
	m.RolledBack.Add(1)
}

// IncRejected increments the counter of scopes rejected by a lifecycle rule
func (m *Metrics) IncRejected() {
	m.Rejected.Add(1)
}

// IncStorageFailures increments the storage failure counter
func (m *Metrics) IncStorageFailures() {
	m.StorageFailures.Add(1)
}

// IncStaleCards increments the optimistic version conflict counter
func (m *Metrics) IncStaleCards() {
	m.StaleCards.Add(1)
}

// Snapshot represents a point-in-time snapshot of metrics
type Snapshot struct {
	Committed       int64     `json:"committed"`
	RolledBack      int64     `json:"rolled_back"`
	Rejected        int64     `json:"rejected"`
	StorageFailures int64     `json:"storage_failures"`
	StaleCards      int64     `json:"stale_cards"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Committed:       m.Committed.Load(),
		RolledBack:      m.RolledBack.Load(),
		Rejected:        m.Rejected.Load(),
		StorageFailures: m.StorageFailures.Load(),
		StaleCards:      m.StaleCards.Load(),
		StartTime:       m.StartTime,
		Uptime:          time.Since(m.StartTime).String(),
	}
}
