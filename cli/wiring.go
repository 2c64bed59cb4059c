package cli

import (
	"context"
	"log"

	"dhootha/api"
	"dhootha/archive"
	"dhootha/common"
	"dhootha/config"
	"dhootha/events"
	"dhootha/metrics"
	"dhootha/newsapi"
	"dhootha/orchestrator"
	"dhootha/present"
	"dhootha/quota"
	"dhootha/rssfeeds"
	"dhootha/shared/kafka"
)

// components are the long-lived collaborators shared by the commands.
// Optional sinks are nil when not configured or unreachable.
type components struct {
	retriever *orchestrator.Retriever
	presenter *present.Presenter
	meter     *quota.Meter
	archiver  *archive.Archiver
	producer  *kafka.Producer
}

// buildComponents wires the pipeline from configuration. Failures of
// optional sinks are logged and the sink is left out.
func buildComponents(ctx context.Context, cfg config.Config) *components {
	c := &components{}

	if cfg.NewsAPIKey == "" {
		log.Println("⚠️  NEWS_API_KEY is not set; searches will fail")
	}
	client := newsapi.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.HTTPTimeout)
	resolver := rssfeeds.NewResolver(
		rssfeeds.NewFetcher(cfg.HTTPTimeout),
		rssfeeds.WithContentExtraction(cfg.ExtractContent),
	)

	observers := []orchestrator.Observer{orchestrator.LogObserver{}, metrics.Observer{}}

	if cfg.RedisAddr != "" {
		meter, err := quota.NewMeter(quota.Config{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, TTL: cfg.UsageTTL})
		if err != nil {
			log.Printf("⚠️  Usage meter disabled: %v", err)
		} else {
			log.Printf("✅ Usage meter connected to %s", cfg.RedisAddr)
			c.meter = meter
			observers = append(observers, meter)
		}
	}

	if cfg.S3Bucket != "" {
		store, err := common.NewS3(ctx, common.S3Config{
			Region:       cfg.S3Region,
			Profile:      cfg.S3Profile,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			log.Printf("⚠️  Archive disabled: %v", err)
		} else {
			log.Printf("✅ Archiving results to s3://%s/%s", cfg.S3Bucket, cfg.S3Prefix)
			c.archiver = archive.NewArchiver(store, cfg.S3Bucket, cfg.S3Prefix)
			observers = append(observers, c.archiver)
		}
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaEventTopic != "" {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaEventTopic)
		if err != nil {
			log.Printf("⚠️  Event publishing disabled: %v", err)
		} else {
			log.Printf("✅ Publishing retrieval events to %s", cfg.KafkaEventTopic)
			c.producer = producer
			observers = append(observers, events.NewPublisher(producer))
		}
	}

	c.retriever = orchestrator.NewRetriever(client, resolver, observers...)
	c.presenter = present.NewPresenter(buildTranslator(ctx, cfg), buildSummarizer(cfg))
	if cfg.DedupeCards {
		c.presenter.EnableDedupe()
	}
	return c
}

// buildTranslator returns nil (untyped) when translation is off, so the
// presenter sees no translator at all.
func buildTranslator(ctx context.Context, cfg config.Config) present.Translator {
	if cfg.TranslateAPIKey == "" && !cfg.TranslateADC {
		return nil
	}
	t, err := present.NewGoogleTranslator(ctx, cfg.TranslateAPIKey)
	if err != nil {
		log.Printf("⚠️  Translation disabled: %v", err)
		return nil
	}
	return t
}

func buildSummarizer(cfg config.Config) present.Summarizer {
	if cfg.CohereAPIKey == "" {
		return nil
	}
	return present.NewCohereSummarizer(cfg.CohereAPIKey, cfg.CohereModel)
}

// routerDeps adapts the components to the API, leaving absent sinks as nil
// interfaces.
func (c *components) routerDeps(cfg config.Config) api.Deps {
	d := api.Deps{
		Retriever:    c.retriever,
		Presenter:    c.presenter,
		FetchLimiter: api.NewRateLimiter(cfg.FetchRatePerSecond, cfg.FetchBurst),
	}
	if c.meter != nil {
		d.Usage = c.meter
	}
	if c.archiver != nil {
		d.Archive = c.archiver
	}
	return d
}

func (c *components) Close() {
	if c.meter != nil {
		if err := c.meter.Close(); err != nil {
			log.Printf("⚠️  Failed to close usage meter: %v", err)
		}
	}
	if c.producer != nil {
		if err := c.producer.Close(); err != nil {
			log.Printf("⚠️  Failed to close kafka producer: %v", err)
		}
	}
}
