package validator

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/neuronkit/ygodeck/internal/card"
	"github.com/neuronkit/ygodeck/internal/deck"
)

// hintThreshold is the minimum Jaro-Winkler similarity for a "closest" hint.
const hintThreshold = 0.85

// CardResult holds the violations found on one card.
type CardResult struct {
	Name   string
	Zone   deck.Zone
	Errors []string
}

// Report is the outcome of validating a whole deck. Validation is advisory,
// an invalid card is still part of the deck.
type Report struct {
	TotalCards   int
	ValidCards   int
	InvalidCards int
	Invalid      []CardResult
}

func (r Report) OK() bool { return r.InvalidCards == 0 }

// ValidateDeck checks every card of every zone and collects all violations.
func ValidateDeck(d deck.Deck) Report {
	var r Report
	for _, z := range deck.Zones {
		for _, c := range d.Cards(z) {
			r.TotalCards++

			errs := ValidateCard(c)
			if len(errs) == 0 {
				r.ValidCards++
				continue
			}

			r.InvalidCards++
			name := "Unknown"
			if c != nil && c.Common().Name != "" {
				name = c.Common().Name
			}
			r.Invalid = append(r.Invalid, CardResult{Name: name, Zone: z, Errors: errs})
		}
	}
	return r
}

// ValidateCard returns every rule c violates. An empty result means the card
// is valid.
func ValidateCard(c card.Card) []string {
	if c == nil {
		return []string{"card is missing"}
	}

	v := &cardValidator{}
	v.validateBase(c)

	switch t := c.(type) {
	case card.NormalMonster:
		v.validateMonster(t.Monster)
		v.atLeastOne("level", t.Level)
		v.notNegative("defense", t.Defense)
	case card.XyzMonster:
		v.validateMonster(t.Monster)
		v.atLeastOne("rank", t.Rank)
		v.notNegative("defense", t.Defense)
	case card.LinkMonster:
		v.validateMonster(t.Monster)
		v.atLeastOne("link", t.Link)
	case card.SpellCard:
		if !t.SpellType.Valid() {
			v.fail("invalid spell type: %q", t.SpellType)
		}
	case card.TrapCard:
		if !t.TrapType.Valid() {
			v.fail("invalid trap type: %q", t.TrapType)
		}
	}

	return v.errors
}

type cardValidator struct {
	errors []string
}

func (v *cardValidator) fail(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *cardValidator) validateBase(c card.Card) {
	base := c.Common()
	if strings.TrimSpace(base.Name) == "" {
		v.fail("name is empty")
	}
	if strings.TrimSpace(base.ImageURL) == "" {
		v.fail("image url is empty")
	}
	if !c.Type().Valid() {
		v.fail("invalid card type: %q", c.Type())
	}
	if base.Quantity < 1 {
		v.fail("quantity must be at least 1 (got %d)", base.Quantity)
	}
}

func (v *cardValidator) validateMonster(m card.Monster) {
	if !m.Attribute.Valid() {
		v.fail("invalid attribute: %s", withHint(string(m.Attribute), card.Attributes()))
	}
	if !m.Race.Valid() {
		v.fail("invalid race: %s", withHint(string(m.Race), card.Races()))
	}

	var invalid []string
	for _, t := range m.MonsterTypes {
		if !t.Valid() {
			invalid = append(invalid, string(t))
		}
	}
	if len(invalid) > 0 {
		v.fail("invalid monster types: %s", strings.Join(invalid, ", "))
	}

	v.notNegative("attack", m.Attack)
}

func (v *cardValidator) atLeastOne(field string, n int) {
	if n < 1 {
		v.fail("%s must be at least 1 (got %d)", field, n)
	}
}

func (v *cardValidator) notNegative(field string, n int) {
	if n < 0 {
		v.fail("%s must not be negative (got %d)", field, n)
	}
}

// withHint quotes value and, when one of the known values is close enough,
// names it.
func withHint[T ~string](value string, known []T) string {
	if value == "" {
		return `""`
	}

	best, bestScore := "", 0.0
	for _, k := range known {
		score := matchr.JaroWinkler(value, string(k), false)
		if score > bestScore {
			best, bestScore = string(k), score
		}
	}
	if bestScore >= hintThreshold {
		return fmt.Sprintf("%q (closest: %q)", value, best)
	}
	return fmt.Sprintf("%q", value)
}
