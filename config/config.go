package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the immutable runtime configuration, read once from the environment.
type Config struct {
	NewsAPIKey  string
	NewsAPIURL  string
	Port        string
	APIURL      string
	HTTPTimeout time.Duration

	ExtractContent bool
	DedupeCards    bool

	TranslateAPIKey string
	TranslateADC    bool
	CohereAPIKey    string
	CohereModel     string

	RedisAddr     string
	RedisPassword string
	UsageTTL      time.Duration

	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3UsePathStyle bool

	KafkaBrokers      []string
	KafkaRequestTopic string
	KafkaEventTopic   string
	KafkaGroupID      string

	FetchRatePerSecond float64
	FetchBurst         int
}

// Load reads .env if present (non-fatal if missing) and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() Config {
	cfg := Config{
		NewsAPIKey:  strings.TrimSpace(os.Getenv("NEWS_API_KEY")),
		NewsAPIURL:  strings.TrimRight(GetEnvOrDefault("NEWS_API_URL", DefaultNewsAPIURL), "/"),
		Port:        GetEnvOrDefault("PORT", "8080"),
		APIURL:      strings.TrimRight(GetEnvOrDefault("API_URL", "http://localhost:8080"), "/"),
		HTTPTimeout: DefaultHTTPTimeout,

		ExtractContent: envBool("EXTRACT_CONTENT"),
		DedupeCards:    envBool("DEDUPE_CARDS"),

		TranslateAPIKey: strings.TrimSpace(os.Getenv("GOOGLE_TRANSLATE_API_KEY")),
		TranslateADC:    envBool("GOOGLE_TRANSLATE_ADC"),
		CohereAPIKey:    strings.TrimSpace(os.Getenv("COHERE_API_KEY")),
		CohereModel:     GetEnvOrDefault("COHERE_MODEL", "command-r"),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASS"),
		UsageTTL:      48 * time.Hour,

		S3Bucket:       strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3UsePathStyle: envBool("S3_USE_PATH_STYLE"),

		KafkaRequestTopic: GetEnvOrDefault("KAFKA_REQUEST_TOPIC", "news.fetch.requests"),
		KafkaEventTopic:   GetEnvOrDefault("KAFKA_EVENT_TOPIC", "news.retrievals"),
		KafkaGroupID:      GetEnvOrDefault("KAFKA_GROUP_ID", "dhootha-worker"),

		FetchRatePerSecond: 1,
		FetchBurst:         5,
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("USAGE_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.UsageTTL = time.Duration(hours) * time.Hour
		}
	}
	if prefix := strings.TrimSpace(os.Getenv("S3_PREFIX")); prefix != "" {
		cfg.S3Prefix = strings.Trim(prefix, "/") + "/"
	}
	if brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	if v := os.Getenv("FETCH_RATE_PER_SECOND"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			cfg.FetchRatePerSecond = r
		}
	}
	if v := os.Getenv("FETCH_BURST"); v != "" {
		if b, err := strconv.Atoi(v); err == nil && b > 0 {
			cfg.FetchBurst = b
		}
	}

	return cfg
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func envBool(key string) bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "true")
}
