// Package scraper loads a deck page and turns it into a ScrapeResult.
package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/neuronkit/ygodeck/internal/deck"
	"github.com/neuronkit/ygodeck/internal/extractor"
	"github.com/neuronkit/ygodeck/internal/page"
)

type Scraper struct {
	renderer page.Renderer
	now      func() time.Time
}

func New(renderer page.Renderer) *Scraper {
	return &Scraper{renderer: renderer, now: func() time.Time { return time.Now().UTC() }}
}

// Scrape loads url and extracts the deck on it. Failures are reported in the
// result rather than returned.
func (s *Scraper) Scrape(ctx context.Context, url string) deck.ScrapeResult {
	slog.InfoContext(ctx, "loading deck page", "url", url)

	p, err := s.renderer.Render(ctx, url)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load deck page", "url", url, "err", err)
		return deck.ScrapeResult{Success: false, Error: err.Error(), Timestamp: s.now()}
	}
	defer p.Close()

	d := extractor.Extract(ctx, p, url)
	slog.InfoContext(ctx, "scraped deck",
		"deck_id", d.DeckID,
		"name", d.Name,
		"main", len(d.MainDeck),
		"extra", len(d.ExtraDeck),
		"side", len(d.SideDeck),
	)
	return deck.ScrapeResult{Success: true, Deck: &d, Timestamp: s.now()}
}

func (s *Scraper) Close() error {
	return s.renderer.Close()
}
