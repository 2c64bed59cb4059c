// Package worker runs retrievals requested over Kafka.
package worker

import (
	"context"
	"log"

	"dhootha/orchestrator"
	"dhootha/shared/kafka"
	"dhootha/types"
)

// Retriever runs one retrieval to a terminal state
type Retriever interface {
	RetrieveWithID(ctx context.Context, requestID string, f types.Filter) *types.Result
}

// NewHandler returns the message handler for FetchRequest messages.
// Requests that cannot be turned into a filter are skipped, and finished
// retrievals are always committed, including error results.
func NewHandler(r Retriever, today func() types.Date) *kafka.TypedMessageHandler[types.FetchRequest] {
	if today == nil {
		today = types.Today
	}
	return &kafka.TypedMessageHandler[types.FetchRequest]{
		AlwaysMark: true,
		Validate: func(req *types.FetchRequest) bool {
			if _, err := orchestrator.NewFilter(*req, today()); err != nil {
				log.Printf("🚫 Skipping fetch request %s: %v", req.RequestID, err)
				return false
			}
			return true
		},
		Process: func(ctx context.Context, req *types.FetchRequest) error {
			f, err := orchestrator.NewFilter(*req, today())
			if err != nil {
				return nil
			}
			id := req.RequestID
			if id == "" {
				id = types.NewRequestID()
			}
			res := r.RetrieveWithID(ctx, id, f)
			log.Printf("📡 Worker finished %s: %s", id, res.Message)
			return nil
		},
	}
}

// Run consumes requests until ctx is canceled
func Run(ctx context.Context, cfg kafka.ConsumerConfig) error {
	consumer, err := kafka.NewConsumer(cfg)
	if err != nil {
		return err
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	log.Println("Worker shutting down")
	return nil
}
