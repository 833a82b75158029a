package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame and event timings of the event loop.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64

	commandCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the time taken to draw one frame.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records the time taken to handle one terminal event.
func (m *Metrics) RecordEvent(d time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(d.Nanoseconds())
}

// RecordCommand counts a key chord that ran an editor command.
func (m *Metrics) RecordCommand() {
	m.commandCount.Add(1)
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime   time.Duration
	Frames   uint64
	AvgFrame time.Duration
	MaxFrame time.Duration
	Events   uint64
	AvgEvent time.Duration
	Commands uint64
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:   time.Since(m.startTime),
		Frames:   m.frameCount.Load(),
		MaxFrame: time.Duration(m.frameMaxNs.Load()),
		Events:   m.eventCount.Load(),
		Commands: m.commandCount.Load(),
	}
	if s.Frames > 0 {
		s.AvgFrame = time.Duration(m.frameTotalNs.Load() / int64(s.Frames))
	}
	if s.Events > 0 {
		s.AvgEvent = time.Duration(m.eventTotalNs.Load() / int64(s.Events))
	}
	return s
}
