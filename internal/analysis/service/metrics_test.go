package service

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
)

func TestMetrics_ConcurrentRecording(t *testing.T) {
	var m Metrics
	const workers = 32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.recordSubmission()
			switch i % 4 {
			case 0:
				m.recordRejection()
			case 1:
				m.recordDispatch(2*time.Millisecond, nil)
			case 2:
				m.recordDispatch(2*time.Millisecond, domain.ServiceError(http.StatusBadRequest, "bad file"))
			case 3:
				m.recordDispatch(2*time.Millisecond, domain.TransportError(errors.New("connection refused")))
			}
			_ = m.Snapshot()
		}(i)
	}
	wg.Wait()

	s := m.Snapshot()
	assert.Equal(t, int64(workers), s.Submissions)
	assert.Equal(t, int64(workers/4), s.Rejections)
	assert.Equal(t, int64(3*workers/4), s.Dispatches)
	assert.Equal(t, int64(workers/4), s.Successes)
	assert.Equal(t, int64(workers/4), s.ServiceFailures)
	assert.Equal(t, int64(workers/4), s.TransportFailures)
	assert.InDelta(t, 2.0, s.AvgLatencyMs, 0.001)
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	var m Metrics
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())
}
