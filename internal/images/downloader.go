// Package images saves card images next to a scraped deck.
package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/neuronkit/ygodeck/internal/card"
	"github.com/neuronkit/ygodeck/internal/deck"
	"github.com/neuronkit/ygodeck/internal/page"
)

const (
	DefaultConcurrency = 3
	DefaultTimeout     = 30 * time.Second
	DefaultBatchDelay  = time.Second
	DefaultReferer     = "https://www.db.yugioh-card.com/"

	maxNameLength = 50
	imageExt      = ".jpg"
)

var (
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// FileName derives the image file name from a card name.
func FileName(name string) string {
	name = invalidChars.ReplaceAllLiteralString(name, "_")
	name = whitespace.ReplaceAllLiteralString(name, "_")
	if r := []rune(name); len(r) > maxNameLength {
		name = string(r[:maxNameLength])
	}
	return name + imageExt
}

type Options struct {
	// Timeout applies to each image request.
	Timeout time.Duration
	// BatchDelay is the pause between two batches. Zero means no pause.
	BatchDelay time.Duration
	UserAgent  string
	Referer    string
}

func DefaultOptions() Options {
	return Options{
		Timeout:    DefaultTimeout,
		BatchDelay: DefaultBatchDelay,
		UserAgent:  page.DefaultUserAgent,
		Referer:    DefaultReferer,
	}
}

// Outcome is the result of fetching one image.
type Outcome struct {
	Success bool
	// Skipped is set when the file already existed and nothing was fetched.
	Skipped  bool
	FilePath string
	Error    string
}

type Result struct {
	Name string
	Zone deck.Zone
	Outcome
}

// Stats counts the outcomes of one Download or DownloadDeck call.
type Stats struct {
	Downloaded int
	Skipped    int
	Failed     int
}

func (s Stats) Succeeded() int { return s.Downloaded + s.Skipped }

func (s Stats) Total() int { return s.Downloaded + s.Skipped + s.Failed }

func (s *Stats) add(o Outcome) {
	switch {
	case !o.Success:
		s.Failed++
	case o.Skipped:
		s.Skipped++
	default:
		s.Downloaded++
	}
}

func (s Stats) sub(o Stats) Stats {
	return Stats{
		Downloaded: s.Downloaded - o.Downloaded,
		Skipped:    s.Skipped - o.Skipped,
		Failed:     s.Failed - o.Failed,
	}
}

type Summary struct {
	Results []Result
	Stats
}

type ZoneStats struct {
	Zone deck.Zone
	Stats
}

type DeckSummary struct {
	Results []Result
	Zones   []ZoneStats
	Total   Stats
}

// Downloader fetches card images into a directory. A Downloader runs one
// Download or DownloadDeck at a time.
type Downloader struct {
	dir        string
	http       *resty.Client
	batchDelay time.Duration
	stats      Stats
}

func NewDownloader(dir string, opts Options) *Downloader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = page.DefaultUserAgent
	}
	if opts.Referer == "" {
		opts.Referer = DefaultReferer
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeaders(map[string]string{
		"User-Agent":      opts.UserAgent,
		"Accept":          "image/webp,image/apng,image/*,*/*;q=0.8",
		"Accept-Language": "ja,en-US;q=0.9,en;q=0.8",
		"Referer":         opts.Referer,
		"Sec-Fetch-Dest":  "image",
		"Sec-Fetch-Mode":  "no-cors",
		"Sec-Fetch-Site":  "same-origin",
	})

	return &Downloader{dir: dir, http: client, batchDelay: opts.BatchDelay}
}

func (d *Downloader) Dir() string { return d.dir }

// Stats returns the counters of the last Download or DownloadDeck call.
func (d *Downloader) Stats() Stats { return d.stats }

// Path returns where the image of the named card is stored.
func (d *Downloader) Path(name string) string {
	return filepath.Join(d.dir, FileName(name))
}

// DownloadCard fetches a single image. It never returns an error, failures
// are described by the outcome.
func (d *Downloader) DownloadCard(ctx context.Context, c card.Card) Outcome {
	base := c.Common()
	if base.ImageURL == "" {
		return Outcome{Error: "missing image url"}
	}

	path := d.Path(base.Name)
	if _, err := os.Stat(path); err == nil {
		return Outcome{Success: true, Skipped: true, FilePath: path}
	}

	if err := d.fetch(ctx, base.ImageURL, path); err != nil {
		slog.DebugContext(ctx, "image download failed", "card", base.Name, "url", base.ImageURL, "err", err)
		return Outcome{Error: err.Error()}
	}
	return Outcome{Success: true, FilePath: path}
}

func (d *Downloader) fetch(ctx context.Context, url, path string) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("error creating image directory: %w", err)
	}

	res, err := d.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return err
	}
	body := res.RawBody()
	defer body.Close()

	if res.StatusCode() != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", res.StatusCode(), http.StatusText(res.StatusCode()))
	}

	// write next to the target and rename, a partial file never has the final name
	tmp, err := os.CreateTemp(d.dir, filepath.Base(path)+".*.part")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("error reading image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Download fetches the images of cards in batches of n. The cards of a batch
// are fetched concurrently and a batch is finished before the next starts.
func (d *Downloader) Download(ctx context.Context, cards []card.Card, n int) Summary {
	d.stats = Stats{}
	results := d.run(ctx, cards, deck.Main, n)
	return Summary{Results: results, Stats: d.stats}
}

// DownloadDeck fetches the images of every zone, main first, and reports the
// outcome per zone.
func (d *Downloader) DownloadDeck(ctx context.Context, dk deck.Deck, n int) DeckSummary {
	d.stats = Stats{}

	var summary DeckSummary
	for _, z := range deck.Zones {
		before := d.stats
		summary.Results = append(summary.Results, d.run(ctx, dk.Cards(z), z, n)...)
		summary.Zones = append(summary.Zones, ZoneStats{Zone: z, Stats: d.stats.sub(before)})
	}
	summary.Total = d.stats
	return summary
}

func (d *Downloader) run(ctx context.Context, cards []card.Card, z deck.Zone, n int) []Result {
	if n <= 0 {
		n = DefaultConcurrency
	}

	results := make([]Result, len(cards))
	for i, b := range batchBounds(len(cards), n) {
		if i > 0 && d.batchDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(d.batchDelay):
			}
		}

		wg := sync.WaitGroup{}
		for j := b[0]; j < b[1]; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[j] = Result{
					Name:    cards[j].Common().Name,
					Zone:    z,
					Outcome: d.DownloadCard(ctx, cards[j]),
				}
			}()
		}
		wg.Wait()

		for j := b[0]; j < b[1]; j++ {
			d.stats.add(results[j].Outcome)
		}
		slog.InfoContext(ctx, "image batch done",
			"zone", z,
			"processed", b[1],
			"total", len(cards),
			"failed", d.stats.Failed,
		)
	}
	return results
}

// batchBounds splits [0, total) into consecutive [start, end) ranges of at
// most n items.
func batchBounds(total, n int) [][2]int {
	var out [][2]int
	for start := 0; start < total; start += n {
		out = append(out, [2]int{start, min(start+n, total)})
	}
	return out
}
