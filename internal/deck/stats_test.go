package deck

import (
	"testing"

	"github.com/neuronkit/ygodeck/internal/card"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	s := Stats(sampleDeck())

	require.Equal(t, CardCount{Main: 6, Extra: 3, Side: 0, Total: 9}, s.Count)
	require.Equal(t, map[card.CardType]int{
		card.TypeMonster: 6,
		card.TypeSpell:   1,
		card.TypeTrap:    2,
	}, s.Types)
	require.Equal(t, 5, s.Races[card.RaceWarrior])
	require.Equal(t, 1, s.Races[card.RaceCyberse])
	require.Equal(t, map[int]int{4: 3}, s.Levels)
	require.Equal(t, map[int]int{4: 2}, s.Ranks)
	require.Equal(t, map[int]int{3: 1}, s.Links)
	require.Equal(t, 2, s.Attacks[2500])
	require.Equal(t, 3, s.Attributes[card.AttributeEarth])
}

func TestSearch(t *testing.T) {
	d := sampleDeck()
	four := 4
	zero := 0

	testCases := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{"everything", Criteria{}, []string{"ゴブリンドバーグ", "増援", "神の宣告", "No.39 希望皇ホープ", "デコード・トーカー"}},
		{"by name", Criteria{Name: "ホープ"}, []string{"No.39 希望皇ホープ"}},
		{"by type", Criteria{Type: card.TypeTrap}, []string{"神の宣告"}},
		{"by race", Criteria{Race: card.RaceWarrior}, []string{"ゴブリンドバーグ", "No.39 希望皇ホープ"}},
		{"level excludes rank", Criteria{Level: &four}, []string{"ゴブリンドバーグ"}},
		{"rank", Criteria{Rank: &four}, []string{"No.39 希望皇ホープ"}},
		{"defense skips links", Criteria{Defense: &zero}, []string{"ゴブリンドバーグ"}},
		{"sub-type", Criteria{MonsterType: card.MonsterEffect, Attribute: card.AttributeDark}, []string{"デコード・トーカー"}},
		{"spell type", Criteria{SpellType: card.SpellNormal}, []string{"増援"}},
		{"trap type mismatch", Criteria{TrapType: card.TrapNormal}, nil},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			var names []string
			for _, m := range Search(d, test.criteria) {
				names = append(names, m.Card.Common().Name)
			}
			require.Equal(t, test.expected, names)
		})
	}
}
