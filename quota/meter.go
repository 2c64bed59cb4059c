// Package quota keeps per-day retrieval counters in Redis so usage against
// the NewsAPI plan can be checked from the API.
package quota

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"dhootha/metrics"
	"dhootha/types"
)

// ErrDisabled is returned when no meter is configured
var ErrDisabled = errors.New("usage meter is not configured")

const (
	keyPrefix    = "dhootha:usage:"
	fieldTotal   = "total"
	fieldItems   = "items"
	fieldAPI     = "api_calls"
	fieldFeed    = "feed_fetches"
	statePrefix  = "state:"
	opTimeout    = 5 * time.Second
	defaultTTL   = 48 * time.Hour
	defaultRedis = "localhost:6379"
)

// Config configures the Redis connection and counter retention
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Usage is the set of counters for one day
type Usage struct {
	Date        types.Date            `json:"date"`
	Retrievals  int64                 `json:"retrievals"`
	APICalls    int64                 `json:"api_calls"`
	FeedFetches int64                 `json:"feed_fetches"`
	Items       int64                 `json:"items"`
	ByState     map[types.State]int64 `json:"by_state"`
}

// Meter counts retrievals per UTC day
type Meter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMeter connects to Redis and verifies connectivity
func NewMeter(cfg Config) (*Meter, error) {
	if cfg.Addr == "" {
		cfg.Addr = defaultRedis
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return newMeter(client, cfg.TTL), nil
}

func newMeter(client *redis.Client, ttl time.Duration) *Meter {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Meter{client: client, ttl: ttl}
}

// Close closes the underlying Redis client
func (m *Meter) Close() error {
	return m.client.Close()
}

func dayKey(d types.Date) string {
	return keyPrefix + d.String()
}

// Record adds one retrieval to the counters of the day it finished on.
func (m *Meter) Record(ctx context.Context, res *types.Result) error {
	if m == nil {
		return ErrDisabled
	}
	finished := res.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	key := dayKey(types.DateOf(finished))

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pipe := m.client.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldTotal, 1)
	pipe.HIncrBy(ctx, key, statePrefix+string(res.State), 1)
	pipe.HIncrBy(ctx, key, fieldItems, int64(res.Count))
	// every retrieval makes exactly one search call
	pipe.HIncrBy(ctx, key, fieldAPI, 1)
	if res.FallbackAttempted {
		pipe.HIncrBy(ctx, key, fieldFeed, 1)
	}
	pipe.Expire(ctx, key, m.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// Observe records the retrieval and logs failures. It satisfies
// orchestrator.Observer.
func (m *Meter) Observe(ctx context.Context, res *types.Result) {
	if err := m.Record(ctx, res); err != nil {
		metrics.RecordError("usage")
		log.Printf("⚠️  Usage meter: %v", err)
	}
}

// Usage returns the counters for a day; days without traffic are all zero.
func (m *Meter) Usage(ctx context.Context, day types.Date) (Usage, error) {
	if m == nil {
		return Usage{}, ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	fields, err := m.client.HGetAll(ctx, dayKey(day)).Result()
	if err != nil {
		return Usage{}, fmt.Errorf("failed to read usage: %w", err)
	}

	u := Usage{Date: day, ByState: make(map[types.State]int64)}
	for field, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("⚠️  Ignoring non-numeric usage field %s=%q", field, raw)
			continue
		}
		switch {
		case field == fieldTotal:
			u.Retrievals = n
		case field == fieldItems:
			u.Items = n
		case field == fieldAPI:
			u.APICalls = n
		case field == fieldFeed:
			u.FeedFetches = n
		case strings.HasPrefix(field, statePrefix):
			u.ByState[types.State(strings.TrimPrefix(field, statePrefix))] = n
		}
	}
	return u, nil
}
