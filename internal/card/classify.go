package card

import (
	"slices"
	"strconv"
	"strings"
)

// RawRow is the text scraped out of one card row of a deck page, before any
// interpretation.
type RawRow struct {
	Name            string
	ImageURL        string
	CardID          string
	CardText        string
	QuantityText    string
	AttackText      string
	DefenseText     string
	AttributeOrType string // "光属性" for monsters, "魔法" or "罠" otherwise
	SpellOrTrapType string // "速攻", "永続", ... without the category suffix
	SpecsText       string // 【Race／OtherType／MonsterType】
	LevelOrRank     string
	LinkText        string
}

const (
	attributeMarker = "属性"
	specsOpen       = "【"
	specsClose      = "】"
	specsSeparator  = "／"
)

// Classify turns a raw row into one of the five card shapes. It never fails:
// missing text falls back to zero values or documented defaults and is left
// for the validator to report.
func Classify(row RawRow) Card {
	base := Base{
		Name:     row.Name,
		ImageURL: row.ImageURL,
		CardID:   row.CardID,
		CardText: row.CardText,
		Quantity: parseQuantity(row.QuantityText),
	}

	switch CardType(row.AttributeOrType) {
	case TypeSpell:
		return SpellCard{Base: base, SpellType: spellTypeOf(row.SpellOrTrapType)}
	case TypeTrap:
		return TrapCard{Base: base, TrapType: trapTypeOf(row.SpellOrTrapType)}
	}
	return classifyMonster(base, row)
}

func classifyMonster(base Base, row RawRow) Card {
	race, subTypes := ParseSpecs(row.SpecsText)
	m := Monster{
		MonsterTypes: subTypes,
		Attribute:    Attribute(strings.ReplaceAll(row.AttributeOrType, attributeMarker, "")),
		Race:         race,
		Attack:       parseNumber(row.AttackText),
	}

	switch {
	case m.Has(MonsterXyz):
		return XyzMonster{
			Base:    base,
			Monster: m,
			Rank:    parseNumber(row.LevelOrRank),
			Defense: parseNumber(row.DefenseText),
		}
	case m.Has(MonsterLink):
		return LinkMonster{
			Base:    base,
			Monster: m,
			Link:    parseNumber(row.LinkText),
		}
	default:
		return NormalMonster{
			Base:    base,
			Monster: m,
			Level:   parseNumber(row.LevelOrRank),
			Defense: parseNumber(row.DefenseText),
		}
	}
}

// ParseSpecs splits "【魔法使い族／効果】" into its race and the recognised
// monster sub-types. The race is returned as is, unknown sub-types are dropped.
func ParseSpecs(text string) (Race, []MonsterType) {
	text = strings.ReplaceAll(text, specsOpen, "")
	text = strings.ReplaceAll(text, specsClose, "")

	var parts []string
	for _, p := range strings.Split(strings.TrimSpace(text), specsSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", []MonsterType{}
	}

	types := []MonsterType{}
	for _, p := range parts[1:] {
		t := MonsterType(p)
		if t.Valid() && !slices.Contains(types, t) {
			types = append(types, t)
		}
	}
	return Race(parts[0]), types
}

func spellTypeOf(text string) SpellType {
	if text = strings.TrimSpace(text); text == "" {
		return SpellNormal
	}
	if t := SpellType(text + string(TypeSpell)); t.Valid() {
		return t
	}
	return SpellNormal
}

func trapTypeOf(text string) TrapType {
	if text = strings.TrimSpace(text); text == "" {
		return TrapNormal
	}
	if t := TrapType(text + string(TypeTrap)); t.Valid() {
		return t
	}
	return TrapNormal
}

// digitsOnly drops everything except ASCII digits, "攻撃力 2,500" becomes "2500".
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseNumber(s string) int {
	n, err := strconv.Atoi(digitsOnly(s))
	if err != nil {
		return 0
	}
	return n
}

func parseQuantity(s string) int {
	if strings.TrimSpace(s) == "" {
		s = "1"
	}
	n, err := strconv.Atoi(digitsOnly(s))
	if err != nil {
		return 1
	}
	return n
}
