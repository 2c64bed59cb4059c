package present

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"

	"dhootha/config"
)

const (
	// translateBatchSize stays under the per-request segment limit of the v2 API
	translateBatchSize = 100
	translateScope     = "https://www.googleapis.com/auth/cloud-translation"
)

// GoogleTranslator translates with the Cloud Translation v2 API
type GoogleTranslator struct {
	service *translate.Service
}

// NewGoogleTranslator authenticates with an API key, or with application
// default credentials when apiKey is empty.
func NewGoogleTranslator(ctx context.Context, apiKey string) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		client, err := google.DefaultClient(ctx, translateScope)
		if err != nil {
			return nil, fmt.Errorf("unable to load default credentials: %w", err)
		}
		opts = append(opts, option.WithHTTPClient(client))
	}

	service, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create translate service: %w", err)
	}
	return &GoogleTranslator{service: service}, nil
}

// Translate translates texts from English into target. Empty strings are
// passed through without being sent.
func (g *GoogleTranslator) Translate(ctx context.Context, texts []string, target string) ([]string, error) {
	out := make([]string, len(texts))
	copy(out, texts)

	pending := make([]int, 0, len(texts))
	for i, t := range texts {
		if t != "" {
			pending = append(pending, i)
		}
	}

	for start := 0; start < len(pending); start += translateBatchSize {
		end := start + translateBatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		q := make([]string, len(batch))
		for j, idx := range batch {
			q[j] = texts[idx]
		}

		resp, err := g.service.Translations.List(q, target).
			Source(config.SearchLanguage).
			Format("text").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to translate: %w", err)
		}
		if len(resp.Translations) != len(q) {
			return nil, fmt.Errorf("translation count mismatch: got %d, want %d", len(resp.Translations), len(q))
		}
		for j, idx := range batch {
			out[idx] = resp.Translations[j].TranslatedText
		}
	}
	return out, nil
}
