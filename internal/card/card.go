package card

import "slices"

// Kind identifies which of the five card shapes a Card is.
type Kind int

const (
	KindNormalMonster Kind = iota
	KindXyzMonster
	KindLinkMonster
	KindSpell
	KindTrap
)

func (k Kind) String() string {
	switch k {
	case KindNormalMonster:
		return "monster"
	case KindXyzMonster:
		return "xyz monster"
	case KindLinkMonster:
		return "link monster"
	case KindSpell:
		return "spell"
	case KindTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// Card is one entry of a deck zone. It is implemented by NormalMonster,
// XyzMonster, LinkMonster, SpellCard and TrapCard.
type Card interface {
	Common() Base
	Type() CardType
	Kind() Kind
}

// Base holds the fields every card has.
type Base struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	CardID   string `json:"cardId,omitempty"`
	CardText string `json:"cardText,omitempty"`
	Quantity int    `json:"quantity"`
}

func (b Base) Common() Base { return b }

// Monster holds the fields shared by the three monster shapes.
type Monster struct {
	MonsterTypes []MonsterType `json:"monsterTypes"`
	Attribute    Attribute     `json:"attribute"`
	Race         Race          `json:"race"`
	Attack       int           `json:"attack"`
}

// Has reports whether the monster carries the given sub-type.
func (m Monster) Has(t MonsterType) bool {
	return slices.Contains(m.MonsterTypes, t)
}

// NormalMonster is any monster with a level: normal, effect, fusion, synchro,
// ritual and so on.
type NormalMonster struct {
	Base
	Monster
	Level   int `json:"level"`
	Defense int `json:"defense"`
}

type XyzMonster struct {
	Base
	Monster
	Rank    int `json:"rank"`
	Defense int `json:"defense"`
}

// LinkMonster has a link rating and no defense.
type LinkMonster struct {
	Base
	Monster
	Link int `json:"link"`
}

type SpellCard struct {
	Base
	SpellType SpellType `json:"spellType"`
}

type TrapCard struct {
	Base
	TrapType TrapType `json:"trapType"`
}

func (NormalMonster) Type() CardType { return TypeMonster }
func (XyzMonster) Type() CardType    { return TypeMonster }
func (LinkMonster) Type() CardType   { return TypeMonster }
func (SpellCard) Type() CardType     { return TypeSpell }
func (TrapCard) Type() CardType      { return TypeTrap }

func (NormalMonster) Kind() Kind { return KindNormalMonster }
func (XyzMonster) Kind() Kind    { return KindXyzMonster }
func (LinkMonster) Kind() Kind   { return KindLinkMonster }
func (SpellCard) Kind() Kind     { return KindSpell }
func (TrapCard) Kind() Kind      { return KindTrap }

// MonsterOf returns the monster fields of c, or false if c is not a monster.
func MonsterOf(c Card) (Monster, bool) {
	switch v := c.(type) {
	case NormalMonster:
		return v.Monster, true
	case XyzMonster:
		return v.Monster, true
	case LinkMonster:
		return v.Monster, true
	}
	return Monster{}, false
}

// Defense returns the defense of c. Link monsters, spells and traps have none.
func Defense(c Card) (int, bool) {
	switch v := c.(type) {
	case NormalMonster:
		return v.Defense, true
	case XyzMonster:
		return v.Defense, true
	}
	return 0, false
}
