package card

import (
	"encoding/json"
	"fmt"
)

// The variants don't store their type tag, it is added on the way out and
// used to pick the variant on the way in.

func (c NormalMonster) MarshalJSON() ([]byte, error) {
	type alias NormalMonster
	return json.Marshal(struct {
		Type CardType `json:"type"`
		alias
	}{TypeMonster, alias(c)})
}

func (c XyzMonster) MarshalJSON() ([]byte, error) {
	type alias XyzMonster
	return json.Marshal(struct {
		Type CardType `json:"type"`
		alias
	}{TypeMonster, alias(c)})
}

func (c LinkMonster) MarshalJSON() ([]byte, error) {
	type alias LinkMonster
	return json.Marshal(struct {
		Type CardType `json:"type"`
		alias
	}{TypeMonster, alias(c)})
}

func (c SpellCard) MarshalJSON() ([]byte, error) {
	type alias SpellCard
	return json.Marshal(struct {
		Type CardType `json:"type"`
		alias
	}{TypeSpell, alias(c)})
}

func (c TrapCard) MarshalJSON() ([]byte, error) {
	type alias TrapCard
	return json.Marshal(struct {
		Type CardType `json:"type"`
		alias
	}{TypeTrap, alias(c)})
}

// Unmarshal decodes a single card. Monsters are told apart by which of the
// "rank" or "link" keys is present, anything else is a level monster.
func Unmarshal(data []byte) (Card, error) {
	var probe struct {
		Type CardType         `json:"type"`
		Rank *json.RawMessage `json:"rank"`
		Link *json.RawMessage `json:"link"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case TypeSpell:
		var c SpellCard
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeTrap:
		var c TrapCard
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeMonster:
		switch {
		case probe.Rank != nil:
			var c XyzMonster
			err := json.Unmarshal(data, &c)
			return c, err
		case probe.Link != nil:
			var c LinkMonster
			err := json.Unmarshal(data, &c)
			return c, err
		default:
			var c NormalMonster
			err := json.Unmarshal(data, &c)
			return c, err
		}
	}
	return nil, fmt.Errorf("unknown card type %q", probe.Type)
}

// List is an ordered list of cards that can be decoded from JSON.
type List []Card

func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(List, 0, len(raw))
	for i, r := range raw {
		c, err := Unmarshal(r)
		if err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		out = append(out, c)
	}
	*l = out
	return nil
}
