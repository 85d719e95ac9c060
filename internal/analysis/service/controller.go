package service

import (
	"context"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/logging"
)

// Controller is the analysis request controller. It owns the FormState and
// serialises every event through Reduce; at most one dispatch is pending at
// any time.
type Controller struct {
	mu         sync.Mutex
	state      FormState
	dispatcher Dispatcher
	metrics    Metrics
}

// NewController creates a controller in the initial state.
func NewController(dispatcher Dispatcher) *Controller {
	return &Controller{
		state:      NewFormState(),
		dispatcher: dispatcher,
	}
}

func (c *Controller) apply(e Event) FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, e)
	return c.state
}

// SetFiles replaces the selected files. No content is read.
func (c *Controller) SetFiles(files []domain.FileHandle) {
	c.apply(FilesSelected{Files: files})
}

// SetMode switches the service mode. Persona fields are kept.
func (c *Controller) SetMode(mode domain.ServiceMode) {
	c.apply(ModeChanged{Mode: mode})
}

func (c *Controller) SetPersona(persona string) {
	c.apply(PersonaEdited{Persona: persona})
}

func (c *Controller) SetJobTask(jobTask string) {
	c.apply(JobTaskEdited{JobTask: jobTask})
}

// State returns a copy of the current FormState.
func (c *Controller) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Metrics returns the submission counters.
func (c *Controller) Metrics() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// begin starts a submission cycle: it clears the previous outcome, validates
// and, on success, marks the request in flight. It refuses to start while a
// dispatch is pending.
func (c *Controller) begin(ctx context.Context) (domain.Payload, domain.RequestState, bool, error) {
	logger := logging.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.InFlight() {
		logger.LogWarn("submit", "ignored: a submission is already in flight")
		return domain.Payload{}, c.state.Request, false, domain.ErrSubmitInFlight
	}
	c.metrics.recordSubmission()

	c.state = Reduce(c.state, SubmitStarted{})
	payload, verr := Build(c.state)
	if verr != nil {
		c.metrics.recordRejection()
		c.state = Reduce(c.state, SubmitRejected{Err: verr})
		logger.LogInfof("submit", "rejected: %s", verr.Code)
		return domain.Payload{}, c.state.Request, false, nil
	}

	c.state = Reduce(c.state, DispatchBegan{})
	logger.LogInfof("submit", "dispatching service=%s files=%d", payload.Service, len(payload.Files))
	return payload, c.state.Request, true, nil
}

func (c *Controller) dispatch(ctx context.Context, payload domain.Payload) domain.RequestState {
	logger := logging.FromContext(ctx)
	start := time.Now()
	result, err := c.dispatcher.Send(ctx, payload)
	c.metrics.recordDispatch(time.Since(start), err)

	var ev Event
	if err != nil {
		logger.LogError("dispatch", err)
		ev = DispatchFailed{Message: domain.DisplayMessage(err)}
	} else {
		logger.LogInfof("dispatch", "completed bytes=%d elapsed=%s", len(result), time.Since(start))
		ev = DispatchDone{Result: result}
	}
	return c.apply(ev).Request
}

// Submit runs one submission cycle and waits for its outcome. A rejected
// submission returns the Rejected state with a nil error; ErrSubmitInFlight
// is returned when another submission is pending.
func (c *Controller) Submit(ctx context.Context) (domain.RequestState, error) {
	payload, st, ok, err := c.begin(ctx)
	if !ok {
		return st, err
	}
	return c.dispatch(ctx, payload), nil
}

// SubmitAsync is Submit without waiting for the service. When the
// submission was dispatched the returned state is InFlight and done
// receives the final state once; otherwise done is nil.
func (c *Controller) SubmitAsync(ctx context.Context) (domain.RequestState, <-chan domain.RequestState, error) {
	payload, st, ok, err := c.begin(ctx)
	if !ok {
		return st, nil, err
	}
	done := make(chan domain.RequestState, 1)
	go func() {
		done <- c.dispatch(ctx, payload)
		close(done)
	}()
	return st, done, nil
}
