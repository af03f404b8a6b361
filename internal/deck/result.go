package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoDeck is returned when a snapshot records a failed scrape.
var ErrNoDeck = errors.New("snapshot contains no deck")

// ScrapeResult is the outcome of one scrape. Either Success is set and Deck is
// present, or Error explains why there is no deck.
type ScrapeResult struct {
	Success   bool      `json:"success"`
	Deck      *Deck     `json:"deck,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// FileName returns the snapshot file name for a deck id.
func FileName(deckID string) string {
	return fmt.Sprintf("deck_%s.json", deckID)
}

// SaveResult writes r into dir as deck_<id>.json and returns the path.
func SaveResult(dir string, r ScrapeResult) (string, error) {
	if r.Deck == nil {
		return "", ErrNoDeck
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding scrape result: %w", err)
	}

	path := filepath.Join(dir, FileName(r.Deck.DeckID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	return path, nil
}

// LoadResult reads a snapshot written by SaveResult.
func LoadResult(path string) (ScrapeResult, error) {
	var r ScrapeResult

	data, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return r, nil
}

// LoadDeck reads a snapshot and returns its deck, failing with ErrNoDeck when
// the snapshot records an unsuccessful scrape.
func LoadDeck(path string) (Deck, error) {
	r, err := LoadResult(path)
	if err != nil {
		return Deck{}, err
	}
	if !r.Success || r.Deck == nil {
		return Deck{}, ErrNoDeck
	}
	return *r.Deck, nil
}

// ResolvePath finds a snapshot either by deck id inside dir or as a path.
func ResolvePath(dir, deckOrPath string) (string, error) {
	// First, try the output directory
	if !strings.ContainsAny(deckOrPath, `/\`) {
		candidate := filepath.Join(dir, FileName(deckOrPath))
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	// If not found there, treat as a path
	if _, err := os.Stat(deckOrPath); err == nil {
		return deckOrPath, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckOrPath)
}

// Snapshot describes a saved snapshot file.
type Snapshot struct {
	Path   string
	Result ScrapeResult
}

// ListSnapshots loads every deck_*.json in dir. Files that fail to parse are
// skipped.
func ListSnapshots(dir string) ([]Snapshot, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "deck_*.json"))
	if err != nil {
		return nil, err
	}

	var out []Snapshot
	for _, p := range paths {
		r, err := LoadResult(p)
		if err != nil {
			continue
		}
		out = append(out, Snapshot{Path: p, Result: r})
	}
	return out, nil
}
