package service

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
)

// Metrics tracks submission outcomes for one controller.
type Metrics struct {
	submissions       atomic.Int64
	rejections        atomic.Int64
	dispatches        atomic.Int64
	successes         atomic.Int64
	transportFailures atomic.Int64
	serviceFailures   atomic.Int64
	dispatchLatency   atomic.Int64 // Total latency in nanoseconds
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Submissions       int64   `json:"submissions"`
	Rejections        int64   `json:"rejections"`
	Dispatches        int64   `json:"dispatches"`
	Successes         int64   `json:"successes"`
	TransportFailures int64   `json:"transport_failures"`
	ServiceFailures   int64   `json:"service_failures"`
	AvgLatencyMs      float64 `json:"avg_latency_ms"`
}

func (m *Metrics) recordSubmission() { m.submissions.Add(1) }
func (m *Metrics) recordRejection()  { m.rejections.Add(1) }

func (m *Metrics) recordDispatch(duration time.Duration, err error) {
	m.dispatches.Add(1)
	m.dispatchLatency.Add(duration.Nanoseconds())
	if err == nil {
		m.successes.Add(1)
		return
	}
	var de *domain.DispatchError
	if errors.As(err, &de) && de.Kind == domain.KindService {
		m.serviceFailures.Add(1)
		return
	}
	m.transportFailures.Add(1)
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Submissions:       m.submissions.Load(),
		Rejections:        m.rejections.Load(),
		Dispatches:        m.dispatches.Load(),
		Successes:         m.successes.Load(),
		TransportFailures: m.transportFailures.Load(),
		ServiceFailures:   m.serviceFailures.Load(),
	}
	if s.Dispatches > 0 {
		s.AvgLatencyMs = float64(m.dispatchLatency.Load()) / float64(s.Dispatches) / 1e6
	}
	return s
}
