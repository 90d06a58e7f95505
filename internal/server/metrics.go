package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	Requests      atomic.Int64
	ClientErrors  atomic.Int64
	ServerErrors  atomic.Int64
	TasksCreated  atomic.Int64
	TasksUpdated  atomic.Int64
	TasksDeleted  atomic.Int64
	LabelsCreated atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// ObserveStatus counts a finished request by its response status
func (m *Metrics) ObserveStatus(status int) {
	m.Requests.Add(1)
	switch {
	case status >= 500:
		m.ServerErrors.Add(1)
	case status >= 400:
		m.ClientErrors.Add(1)
	}
}

// IncTasksCreated increments the tasks created counter
func (m *Metrics) IncTasksCreated() {
	m.TasksCreated.Add(1)
}

// IncTasksUpdated increments the tasks updated counter
func (m *Metrics) IncTasksUpdated() {
	m.TasksUpdated.Add(1)
}

// IncTasksDeleted increments the tasks deleted counter
func (m *Metrics) IncTasksDeleted() {
	m.TasksDeleted.Add(1)
}

// IncLabelsCreated increments the labels created counter
func (m *Metrics) IncLabelsCreated() {
	m.LabelsCreated.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Requests      int64     `json:"requests"`
	ClientErrors  int64     `json:"client_errors"`
	ServerErrors  int64     `json:"server_errors"`
	TasksCreated  int64     `json:"tasks_created"`
	TasksUpdated  int64     `json:"tasks_updated"`
	TasksDeleted  int64     `json:"tasks_deleted"`
	LabelsCreated int64     `json:"labels_created"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:      m.Requests.Load(),
		ClientErrors:  m.ClientErrors.Load(),
		ServerErrors:  m.ServerErrors.Load(),
		TasksCreated:  m.TasksCreated.Load(),
		TasksUpdated:  m.TasksUpdated.Load(),
		TasksDeleted:  m.TasksDeleted.Load(),
		LabelsCreated: m.LabelsCreated.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).String(),
	}
}
