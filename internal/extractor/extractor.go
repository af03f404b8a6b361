package extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/neuronkit/ygodeck/internal/card"
	"github.com/neuronkit/ygodeck/internal/deck"
	"github.com/neuronkit/ygodeck/internal/page"
)

var (
	ErrZoneNotFound = errors.New("zone container not found")
	ErrNoRows       = errors.New("zone has no card rows")
)

const rowSelector = ".t_row.c_normal"

// zoneSelectors maps each zone to its container on the deck page.
var zoneSelectors = map[deck.Zone]string{
	deck.Main:  "#detailtext_main",
	deck.Extra: "#detailtext_ext",
	deck.Side:  "#detailtext_side",
}

// ZoneSelectors returns the container selectors of all zones.
func ZoneSelectors() []string {
	out := make([]string, 0, len(deck.Zones))
	for _, z := range deck.Zones {
		out = append(out, zoneSelectors[z])
	}
	return out
}

var deckIDPattern = regexp.MustCompile(`dno=(\d+)`)

// headings containing these belong to the site chrome, not the deck
var boilerplateHeadings = []string{
	"遊戯王ニューロン",
	"オフィシャルカードゲーム",
	"カードデータベース",
}

var (
	publishedMarker = regexp.MustCompile(`【\s*公開中\s*】\s*`)
	gameIDMarker    = regexp.MustCompile(`\[ CARD GAME ID : \d+ \]`)
)

// Extract reads a deck from a loaded deck page. Zones are extracted
// concurrently; a zone that can't be read ends up empty without affecting
// the others.
func Extract(ctx context.Context, p page.Page, sourceURL string) deck.Deck {
	deckID := DeckID(sourceURL)
	name := DeckName(p)
	slog.InfoContext(ctx, "extracting deck", "url", sourceURL, "deck_id", deckID, "name", name)

	var zones [len(deck.Zones)]card.List
	wg := sync.WaitGroup{}
	for i, z := range deck.Zones {
		wg.Add(1)
		go func() {
			defer wg.Done()

			cards, err := extractZone(p, z)
			if err != nil {
				slog.WarnContext(ctx, "failed to extract zone, leaving it empty", "zone", z, "err", err)
				cards = card.List{}
			} else {
				slog.InfoContext(ctx, "extracted zone", "zone", z, "cards", len(cards))
			}
			zones[i] = cards
		}()
	}
	wg.Wait()

	return deck.Deck{
		Name:      name,
		DeckID:    deckID,
		MainDeck:  zones[deck.Main],
		ExtraDeck: zones[deck.Extra],
		SideDeck:  zones[deck.Side],
	}
}

// DeckID returns the dno query parameter of a deck url.
func DeckID(sourceURL string) string {
	m := deckIDPattern.FindStringSubmatch(sourceURL)
	if m == nil {
		return deck.UnknownID
	}
	return m[1]
}

// DeckName returns the first heading that isn't site chrome, with the
// publication and game id annotations removed.
func DeckName(p page.Scope) string {
	for _, h := range p.All("h1") {
		text := h.Text()
		if text == "" || isBoilerplate(text) {
			continue
		}
		text = publishedMarker.ReplaceAllLiteralString(text, "")
		text = gameIDMarker.ReplaceAllLiteralString(text, "")
		return strings.TrimSpace(text)
	}
	return deck.UnknownName
}

func isBoilerplate(text string) bool {
	for _, b := range boilerplateHeadings {
		if strings.Contains(text, b) {
			return true
		}
	}
	return false
}

func extractZone(p page.Page, z deck.Zone) (cards card.List, err error) {
	defer func() {
		if r := recover(); r != nil {
			cards, err = nil, fmt.Errorf("panic while reading %s zone: %v", z, r)
		}
	}()

	container, ok := p.First(zoneSelectors[z])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneSelectors[z])
	}
	rows := container.All(rowSelector)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRows, zoneSelectors[z])
	}

	cards = make(card.List, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, card.Classify(ReadRow(p, row)))
	}
	return cards, nil
}

// ReadRow collects the raw text fields of one card row.
func ReadRow(p page.Page, row page.Scope) card.RawRow {
	text := func(selector string) string {
		if s, ok := row.First(selector); ok {
			return s.Text()
		}
		return ""
	}
	attr := func(selector, name string) string {
		if s, ok := row.First(selector); ok {
			return s.Attr(name)
		}
		return ""
	}

	return card.RawRow{
		Name:            text(".card_name"),
		ImageURL:        page.Resolve(p, attr(`img[id^="card_image"]`, "src")),
		CardID:          attr("input.cid", "value"),
		CardText:        text(".box_card_text"),
		QuantityText:    text(".cards_num_set span"),
		AttackText:      text(".atk_power span"),
		DefenseText:     text(".def_power span"),
		AttributeOrType: text(".box_card_attribute span:last-child"),
		SpellOrTrapType: text(".box_card_effect span:last-child"),
		SpecsText:       text(".card_info_species_and_other_item span"),
		LevelOrRank:     text(".box_card_level_rank span"),
		LinkText:        text(".box_card_linkmarker span"),
	}
}
