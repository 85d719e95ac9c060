package service

import (
	"context"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
)

// Dispatcher sends one payload to the analysis service and waits for the
// answer. Errors should be *domain.DispatchError; any other error is shown
// with the fallback message.
type Dispatcher interface {
	Send(ctx context.Context, payload domain.Payload) (domain.AnalysisResult, error)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, payload domain.Payload) (domain.AnalysisResult, error)

func (f DispatcherFunc) Send(ctx context.Context, payload domain.Payload) (domain.AnalysisResult, error) {
	return f(ctx, payload)
}
