// Package events publishes a summary of every finished retrieval.
package events

import (
	"context"
	"log"

	"dhootha/metrics"
	"dhootha/types"
)

// Sender delivers a JSON message under a key. *kafka.Producer satisfies it.
type Sender interface {
	SendJSON(key string, v any) error
}

// Publisher sends a RetrievalEvent for each result it observes
type Publisher struct {
	sender Sender
}

func NewPublisher(sender Sender) *Publisher {
	return &Publisher{sender: sender}
}

// Publish sends the event for res keyed by its request id
func (p *Publisher) Publish(res *types.Result) error {
	return p.sender.SendJSON(res.RequestID, res.Event())
}

// Observe publishes and logs failures. Publishing never affects the result.
func (p *Publisher) Observe(_ context.Context, res *types.Result) {
	if err := p.Publish(res); err != nil {
		metrics.RecordError("publish")
		log.Printf("⚠️  Failed to publish event for %s: %v", res.RequestID, err)
	}
}
