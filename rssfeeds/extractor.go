package rssfeeds

import (
	"fmt"
	"log"
	"sync"
	"time"

	"dhootha/config"
	"dhootha/types"

	readability "github.com/go-shiori/go-readability"
)

// ExtractAllContent fills Content for each entry using a pool of workers.
// Failures are logged per entry and leave the entry unchanged.
func ExtractAllContent(entries []types.FeedEntry, workers int) {
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	indexChan := make(chan int, len(entries))

	for i := 0; i < workers; i++ {
		go func(workerID int) {
			for idx := range indexChan {
				if err := extractContent(&entries[idx], config.ExtractTimeout); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, entries[idx].Link, err)
				}
				wg.Done()
			}
		}(i)
	}

	for i := range entries {
		wg.Add(1)
		indexChan <- i
	}

	wg.Wait()
	close(indexChan)
}

// extractContent fetches and extracts full content for a single entry
func extractContent(entry *types.FeedEntry, timeout time.Duration) error {
	if entry.Link == "" {
		return fmt.Errorf("entry link is empty")
	}

	extracted, err := readability.FromURL(entry.Link, timeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	entry.Content = extracted.TextContent
	if entry.Summary == "" {
		entry.Summary = extracted.Excerpt
	}
	if entry.ImageURL == "" {
		entry.ImageURL = extracted.Image
	}
	if entry.Author == "" {
		entry.Author = extracted.Byline
	}
	return nil
}
