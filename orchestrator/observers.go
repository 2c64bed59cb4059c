package orchestrator

import (
	"context"
	"log"
	"time"

	"dhootha/types"
)

// LogObserver writes a one-line summary of each result
type LogObserver struct{}

func (LogObserver) Observe(ctx context.Context, result *types.Result) {
	switch result.State {
	case types.StateSuccess, types.StateSuccessRSS:
		log.Printf("✅ [%s] %s (%s, %v)", result.RequestID, result.Message, result.State, result.Duration().Round(time.Millisecond))
	case types.StateEmpty:
		log.Printf("🚫 [%s] %s", result.RequestID, result.Message)
	default:
		log.Printf("❌ [%s] %s", result.RequestID, result.Message)
	}
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ctx context.Context, result *types.Result)

func (f ObserverFunc) Observe(ctx context.Context, result *types.Result) {
	f(ctx, result)
}
