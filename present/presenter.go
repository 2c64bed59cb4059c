// Package present turns retrieval results into display cards, translating
// them into the selected language when a translator is configured.
package present

import (
	"context"
	"log"
	"strings"

	"dhootha/config"
	"dhootha/datefilter"
	"dhootha/types"
)

const (
	maxSummaryRunes = 400
	digestHeadlines = 10
	displayTime     = "2006-01-02 15:04 UTC"
)

// Card is one rendered article or feed entry. Text fields are plain text,
// not HTML.
type Card struct {
	Kind      string `json:"kind"` // "article" or "rss"
	Title     string `json:"title"`
	Source    string `json:"source"`
	Published string `json:"published,omitempty"`
	Summary   string `json:"summary,omitempty"`
	URL       string `json:"url"`
	ImageURL  string `json:"image_url,omitempty"`
}

// View is everything the dashboard shows for one result
type View struct {
	Language string `json:"language"`
	Digest   string `json:"digest,omitempty"`
	Cards    []Card `json:"cards"`
}

// Translator translates texts into the target language, one output per input
type Translator interface {
	Translate(ctx context.Context, texts []string, target string) ([]string, error)
}

// Summarizer condenses a list of headlines into a short digest
type Summarizer interface {
	Summarize(ctx context.Context, headlines []string) (string, error)
}

// Presenter builds views. Translator and summarizer are optional.
type Presenter struct {
	translator Translator
	summarizer Summarizer
	dedupe     bool
}

// NewPresenter creates a presenter; nil collaborators disable their feature
func NewPresenter(translator Translator, summarizer Summarizer) *Presenter {
	return &Presenter{translator: translator, summarizer: summarizer}
}

// EnableDedupe collapses cards for the same story into one. Off by default,
// so the card count matches the result count.
func (p *Presenter) EnableDedupe() {
	p.dedupe = true
}

// Present renders a result for display in lang, one card per result item
// unless dedupe is enabled. Translation and digest failures are logged and
// the untranslated text is kept.
func (p *Presenter) Present(ctx context.Context, result *types.Result, lang string) View {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	view := View{Language: lang, Cards: BuildCards(result)}
	if p.dedupe {
		view.Cards = DedupeCards(view.Cards)
	}
	if len(view.Cards) == 0 {
		return view
	}

	if p.summarizer != nil {
		headlines := make([]string, 0, digestHeadlines)
		for i := 0; i < len(view.Cards) && i < digestHeadlines; i++ {
			headlines = append(headlines, view.Cards[i].Title)
		}
		digest, err := p.summarizer.Summarize(ctx, headlines)
		if err != nil {
			log.Printf("⚠️  Digest failed: %v", err)
		} else {
			view.Digest = strings.TrimSpace(digest)
		}
	}

	if p.translator != nil && lang != config.SearchLanguage {
		p.translate(ctx, &view)
	}
	return view
}

func (p *Presenter) translate(ctx context.Context, view *View) {
	texts := make([]string, 0, len(view.Cards)*2+1)
	for _, c := range view.Cards {
		texts = append(texts, c.Title, c.Summary)
	}
	if view.Digest != "" {
		texts = append(texts, view.Digest)
	}

	translated, err := p.translator.Translate(ctx, texts, view.Language)
	if err != nil {
		log.Printf("⚠️  Translation to %s failed, showing original text: %v", view.Language, err)
		return
	}
	if len(translated) != len(texts) {
		log.Printf("⚠️  Translation returned %d texts for %d inputs, showing original text", len(translated), len(texts))
		return
	}

	for i := range view.Cards {
		view.Cards[i].Title = translated[2*i]
		view.Cards[i].Summary = translated[2*i+1]
	}
	if view.Digest != "" {
		view.Digest = translated[len(translated)-1]
	}
}

// BuildCards converts the articles or entries of a result into cards, in order
func BuildCards(result *types.Result) []Card {
	if result == nil {
		return nil
	}

	cards := make([]Card, 0, len(result.Articles)+len(result.Entries))
	for _, a := range result.Articles {
		summary := a.Description
		if strings.TrimSpace(summary) == "" {
			summary = a.Content
		}
		card := Card{
			Kind:     "article",
			Title:    Sanitize(a.Title),
			Source:   a.Source.Name,
			Summary:  truncate(Sanitize(summary), maxSummaryRunes),
			URL:      a.URL,
			ImageURL: a.URLToImage,
		}
		if t, ok := datefilter.ParseTimestamp(string(a.PublishedAt)); ok {
			card.Published = t.Format(displayTime)
		}
		cards = append(cards, card)
	}

	for _, e := range result.Entries {
		card := Card{
			Kind:     "rss",
			Title:    Sanitize(e.Title),
			Source:   config.SourceName(config.RSSCapableSource),
			Summary:  truncate(Sanitize(e.Summary), maxSummaryRunes),
			URL:      e.Link,
			ImageURL: e.ImageURL,
		}
		if e.Published != nil {
			card.Published = e.Published.UTC().Format(displayTime)
		}
		cards = append(cards, card)
	}
	return cards
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
