package deck

import (
	"strings"

	"github.com/neuronkit/ygodeck/internal/card"
)

// Criteria filters cards. Nil / empty fields are ignored. A field that does
// not exist on a card's shape never matches, so Rank only ever matches xyz
// monsters.
type Criteria struct {
	Name        string
	Type        card.CardType
	Attribute   card.Attribute
	Race        card.Race
	MonsterType card.MonsterType
	SpellType   card.SpellType
	TrapType    card.TrapType
	Level       *int
	Rank        *int
	Link        *int
	Attack      *int
	Defense     *int
}

// Match reports whether c satisfies every set filter.
func (cr Criteria) Match(c card.Card) bool {
	if cr.Name != "" && !strings.Contains(c.Common().Name, cr.Name) {
		return false
	}
	if cr.Type != "" && c.Type() != cr.Type {
		return false
	}

	m, isMonster := card.MonsterOf(c)
	if cr.Attribute != "" && (!isMonster || m.Attribute != cr.Attribute) {
		return false
	}
	if cr.Race != "" && (!isMonster || m.Race != cr.Race) {
		return false
	}
	if cr.MonsterType != "" && (!isMonster || !m.Has(cr.MonsterType)) {
		return false
	}
	if cr.Attack != nil && (!isMonster || m.Attack != *cr.Attack) {
		return false
	}
	if cr.Defense != nil {
		def, ok := card.Defense(c)
		if !ok || def != *cr.Defense {
			return false
		}
	}

	if cr.SpellType != "" {
		s, ok := c.(card.SpellCard)
		if !ok || s.SpellType != cr.SpellType {
			return false
		}
	}
	if cr.TrapType != "" {
		t, ok := c.(card.TrapCard)
		if !ok || t.TrapType != cr.TrapType {
			return false
		}
	}
	if cr.Level != nil {
		v, ok := c.(card.NormalMonster)
		if !ok || v.Level != *cr.Level {
			return false
		}
	}
	if cr.Rank != nil {
		v, ok := c.(card.XyzMonster)
		if !ok || v.Rank != *cr.Rank {
			return false
		}
	}
	if cr.Link != nil {
		v, ok := c.(card.LinkMonster)
		if !ok || v.Link != *cr.Link {
			return false
		}
	}
	return true
}

// Match is a card found by Search together with its zone.
type Match struct {
	Zone Zone
	Card card.Card
}

// Search returns the cards of d matching cr, in zone order.
func Search(d Deck, cr Criteria) []Match {
	var out []Match
	for _, z := range Zones {
		for _, c := range d.Cards(z) {
			if cr.Match(c) {
				out = append(out, Match{Zone: z, Card: c})
			}
		}
	}
	return out
}
