package deck

import (
	"github.com/neuronkit/ygodeck/internal/card"
)

const (
	// UnknownName is used when the page has no usable deck heading.
	UnknownName = "Unknown Deck"
	// UnknownID is used when the source url carries no deck number.
	UnknownID = "unknown"
)

// Zone is one of the three card groupings of a deck.
type Zone int

const (
	Main Zone = iota
	Extra
	Side
)

// Zones lists the zones in the order they appear on the page.
var Zones = [...]Zone{Main, Extra, Side}

func (z Zone) String() string {
	switch z {
	case Main:
		return "main"
	case Extra:
		return "extra"
	case Side:
		return "side"
	default:
		return "unknown"
	}
}

// Deck is a scraped deck recipe. It is built once by the extractor and not
// modified afterwards.
type Deck struct {
	Name      string    `json:"name"`
	DeckID    string    `json:"deckId"`
	MainDeck  card.List `json:"mainDeck"`
	ExtraDeck card.List `json:"extraDeck"`
	SideDeck  card.List `json:"sideDeck"`

	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Cards returns the cards of a zone.
func (d Deck) Cards(z Zone) card.List {
	switch z {
	case Main:
		return d.MainDeck
	case Extra:
		return d.ExtraDeck
	case Side:
		return d.SideDeck
	}
	return nil
}

// All returns every card of the deck, main first, then extra, then side.
func (d Deck) All() []card.Card {
	all := make([]card.Card, 0, len(d.MainDeck)+len(d.ExtraDeck)+len(d.SideDeck))
	all = append(all, d.MainDeck...)
	all = append(all, d.ExtraDeck...)
	all = append(all, d.SideDeck...)
	return all
}

// Find returns the first card whose name is exactly name.
func (d Deck) Find(name string) (card.Card, Zone, bool) {
	for _, z := range Zones {
		for _, c := range d.Cards(z) {
			if c.Common().Name == name {
				return c, z, true
			}
		}
	}
	return nil, 0, false
}
