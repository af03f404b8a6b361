package card

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMarshalAddsTypeTag(t *testing.T) {
	data, err := json.Marshal(LinkMonster{
		Base:    Base{Name: "デコード・トーカー", Quantity: 1},
		Monster: Monster{MonsterTypes: []MonsterType{MonsterLink}, Attribute: AttributeDark, Race: RaceCyberse, Attack: 2300},
		Link:    3,
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Equal(t, "モンスター", fields["type"])
	require.Equal(t, float64(3), fields["link"])
	require.NotContains(t, fields, "defense")
	require.NotContains(t, fields, "cardId")
}

func TestListRoundTrip(t *testing.T) {
	cards := List{
		NormalMonster{
			Base:    Base{Name: "a", ImageURL: "u", CardText: "text", Quantity: 2},
			Monster: Monster{MonsterTypes: []MonsterType{MonsterEffect}, Attribute: AttributeFire, Race: RacePyro, Attack: 100},
			Level:   4,
			Defense: 0,
		},
		XyzMonster{
			Base:    Base{Name: "b", Quantity: 1},
			Monster: Monster{MonsterTypes: []MonsterType{MonsterXyz}, Attribute: AttributeWater, Race: RaceAqua},
			Rank:    3,
			Defense: 1800,
		},
		LinkMonster{
			Base:    Base{Name: "c", Quantity: 1},
			Monster: Monster{MonsterTypes: []MonsterType{}, Attribute: AttributeWind, Race: RaceWyrm},
			Link:    2,
		},
		SpellCard{Base: Base{Name: "d", CardID: "5", Quantity: 3}, SpellType: SpellEquip},
		TrapCard{Base: Base{Name: "e", Quantity: 1}, TrapType: TrapContinuous},
	}

	data, err := json.Marshal(cards)
	require.NoError(t, err)

	var decoded List
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(cards, decoded); diff != "" {
		t.Fatal(diff)
	}
}

func TestUnmarshalUnknownType(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"フィールド","name":"x"}`))
	require.Error(t, err)

	var l List
	require.Error(t, json.Unmarshal([]byte(`[{"type":"魔法"},{"type":"?"}]`), &l))
}
