// Package archive stores finished retrieval results as JSON documents in S3.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"dhootha/common"
	"dhootha/metrics"
	"dhootha/types"
)

// ErrNotFound is returned by Load when no archived result exists
var ErrNotFound = errors.New("archived result not found")

// ErrDisabled is returned when no archive is configured
var ErrDisabled = errors.New("archive is not configured")

// Store is the subset of common.S3 the archive needs
type Store interface {
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Exists(ctx context.Context, bucket, key string) (bool, error)
}

// Archiver writes results under {prefix}retrievals/{date}/{requestID}.json
type Archiver struct {
	store  Store
	bucket string
	prefix string
}

// NewArchiver creates an archiver. A non-empty prefix gets a trailing slash.
func NewArchiver(store Store, bucket, prefix string) *Archiver {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Archiver{store: store, bucket: bucket, prefix: prefix}
}

// Key returns the object key for a retrieval
func (a *Archiver) Key(date types.Date, requestID string) string {
	return fmt.Sprintf("%sretrievals/%s/%s.json", a.prefix, date.String(), requestID)
}

// Save writes the result unless an object already exists for its request id.
// It reports whether a new object was written.
func (a *Archiver) Save(ctx context.Context, res *types.Result) (bool, error) {
	if a == nil {
		return false, ErrDisabled
	}
	if res.RequestID == "" {
		return false, errors.New("result has no request id")
	}

	key := a.Key(res.Filter.Date, res.RequestID)
	exists, err := a.store.Exists(ctx, a.bucket, key)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	body, err := json.Marshal(res)
	if err != nil {
		return false, fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := a.store.Put(ctx, a.bucket, key, body, "application/json"); err != nil {
		return false, err
	}
	return true, nil
}

// Observe archives the result and logs the outcome. It satisfies
// orchestrator.Observer.
func (a *Archiver) Observe(ctx context.Context, res *types.Result) {
	written, err := a.Save(ctx, res)
	switch {
	case err != nil:
		metrics.RecordError("archive")
		log.Printf("⚠️  Failed to archive %s: %v", res.RequestID, err)
	case written:
		log.Printf("📦 Archived %s to s3://%s/%s", res.RequestID, a.bucket, a.Key(res.Filter.Date, res.RequestID))
	default:
		log.Printf("⏭️  %s already archived", res.RequestID)
	}
}

// Load reads an archived result
func (a *Archiver) Load(ctx context.Context, date types.Date, requestID string) (*types.Result, error) {
	if a == nil {
		return nil, ErrDisabled
	}

	data, err := a.store.Get(ctx, a.bucket, a.Key(date, requestID))
	if err != nil {
		if common.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var res types.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to decode archived result: %w", err)
	}
	return &res, nil
}
