package deck

import (
	"github.com/neuronkit/ygodeck/internal/card"
)

// CardCount counts copies (quantities) per zone.
type CardCount struct {
	Main  int
	Extra int
	Side  int
	Total int
}

// Statistics summarises a deck. Every distribution counts copies, and the
// monster distributions only look at monsters.
type Statistics struct {
	Count      CardCount
	Types      map[card.CardType]int
	Attributes map[card.Attribute]int
	Races      map[card.Race]int
	Levels     map[int]int
	Ranks      map[int]int
	Links      map[int]int
	Attacks    map[int]int
}

// Stats computes the statistics of d.
func Stats(d Deck) Statistics {
	s := Statistics{
		Types:      map[card.CardType]int{},
		Attributes: map[card.Attribute]int{},
		Races:      map[card.Race]int{},
		Levels:     map[int]int{},
		Ranks:      map[int]int{},
		Links:      map[int]int{},
		Attacks:    map[int]int{},
	}

	for _, z := range Zones {
		for _, c := range d.Cards(z) {
			n := c.Common().Quantity
			switch z {
			case Main:
				s.Count.Main += n
			case Extra:
				s.Count.Extra += n
			case Side:
				s.Count.Side += n
			}
			s.Count.Total += n
			s.Types[c.Type()] += n

			if m, ok := card.MonsterOf(c); ok {
				s.Attributes[m.Attribute] += n
				s.Races[m.Race] += n
				s.Attacks[m.Attack] += n
			}
			switch v := c.(type) {
			case card.NormalMonster:
				s.Levels[v.Level] += n
			case card.XyzMonster:
				s.Ranks[v.Rank] += n
			case card.LinkMonster:
				s.Links[v.Link] += n
			}
		}
	}

	return s
}
