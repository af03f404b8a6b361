package extractor

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neuronkit/ygodeck/internal/card"
	"github.com/neuronkit/ygodeck/internal/deck"
	"github.com/neuronkit/ygodeck/internal/page"
	"github.com/stretchr/testify/require"
)

const deckURL = "https://www.db.yugioh-card.com/yugiohdb/member_deck.action?cgid=abc&dno=42&request_locale=ja"

const deckPage = `<html><body>
<h1>遊戯王ニューロン</h1>
<h1>【 公開中 】 Blue-Eyes Test [ CARD GAME ID : 1234 ]</h1>

<div id="detailtext_main">
  <div class="t_row c_normal">
    <input type="hidden" class="cid" value="4007">
    <img id="card_image_1" src="/get_image.action?cid=4007">
    <span class="card_name">青眼の白龍</span>
    <span class="box_card_attribute"><img><span>光属性</span></span>
    <span class="box_card_level_rank"><span>レベル 8</span></span>
    <span class="card_info_species_and_other_item"><span>【ドラゴン族／通常】</span></span>
    <span class="atk_power"><span>攻撃力 3000</span></span>
    <span class="def_power"><span>守備力 2500</span></span>
    <div class="box_card_text">高い攻撃力を誇る伝説のドラゴン。</div>
    <span class="cards_num_set"><span>3</span></span>
  </div>
  <div class="t_row c_normal">
    <input type="hidden" class="cid" value="5000">
    <img id="card_image_2" src="https://cdn.example.com/spell.jpg">
    <span class="card_name">融合</span>
    <span class="box_card_attribute"><img><span>魔法</span></span>
    <span class="box_card_effect"><img><span></span></span>
    <span class="cards_num_set"><span>2</span></span>
  </div>
  <div class="t_row c_normal">
    <img id="card_image_3" src="/trap.jpg">
    <span class="card_name">聖なるバリア</span>
    <span class="box_card_attribute"><span>罠</span></span>
    <span class="box_card_effect"><span>カウンター</span></span>
  </div>
</div>

<div id="detailtext_ext">
  <div class="t_row c_normal">
    <img id="card_image_4" src="/xyz.jpg">
    <span class="card_name">No.39 希望皇ホープ</span>
    <span class="box_card_attribute"><span>光属性</span></span>
    <span class="box_card_level_rank"><span>ランク 4</span></span>
    <span class="card_info_species_and_other_item"><span>【戦士族／エクシーズ／効果】</span></span>
    <span class="atk_power"><span>2500</span></span>
    <span class="def_power"><span>2000</span></span>
  </div>
  <div class="t_row c_normal">
    <img id="card_image_5" src="/link.jpg">
    <span class="card_name">デコード・トーカー</span>
    <span class="box_card_attribute"><span>闇属性</span></span>
    <span class="box_card_linkmarker"><span>LINK-3</span></span>
    <span class="card_info_species_and_other_item"><span>【サイバース族／リンク／効果】</span></span>
    <span class="atk_power"><span>2300</span></span>
  </div>
</div>
</body></html>`

func parse(t *testing.T, html string) page.Page {
	t.Helper()
	p, err := page.Parse(strings.NewReader(html), deckURL)
	require.NoError(t, err)
	return p
}

func TestExtract(t *testing.T) {
	got := Extract(context.Background(), parse(t, deckPage), deckURL)

	expected := deck.Deck{
		Name:   "Blue-Eyes Test",
		DeckID: "42",
		MainDeck: card.List{
			card.NormalMonster{
				Base: card.Base{
					Name:     "青眼の白龍",
					ImageURL: "https://www.db.yugioh-card.com/get_image.action?cid=4007",
					CardID:   "4007",
					CardText: "高い攻撃力を誇る伝説のドラゴン。",
					Quantity: 3,
				},
				Monster: card.Monster{
					MonsterTypes: []card.MonsterType{card.MonsterNormal},
					Attribute:    card.AttributeLight,
					Race:         card.RaceDragon,
					Attack:       3000,
				},
				Level:   8,
				Defense: 2500,
			},
			card.SpellCard{
				Base: card.Base{
					Name:     "融合",
					ImageURL: "https://cdn.example.com/spell.jpg",
					CardID:   "5000",
					Quantity: 2,
				},
				SpellType: card.SpellNormal,
			},
			card.TrapCard{
				Base: card.Base{
					Name:     "聖なるバリア",
					ImageURL: "https://www.db.yugioh-card.com/trap.jpg",
					Quantity: 1,
				},
				TrapType: card.TrapCounter,
			},
		},
		ExtraDeck: card.List{
			card.XyzMonster{
				Base: card.Base{
					Name:     "No.39 希望皇ホープ",
					ImageURL: "https://www.db.yugioh-card.com/xyz.jpg",
					Quantity: 1,
				},
				Monster: card.Monster{
					MonsterTypes: []card.MonsterType{card.MonsterXyz, card.MonsterEffect},
					Attribute:    card.AttributeLight,
					Race:         card.RaceWarrior,
					Attack:       2500,
				},
				Rank:    4,
				Defense: 2000,
			},
			card.LinkMonster{
				Base: card.Base{
					Name:     "デコード・トーカー",
					ImageURL: "https://www.db.yugioh-card.com/link.jpg",
					Quantity: 1,
				},
				Monster: card.Monster{
					MonsterTypes: []card.MonsterType{card.MonsterLink, card.MonsterEffect},
					Attribute:    card.AttributeDark,
					Race:         card.RaceCyberse,
					Attack:       2300,
				},
				Link: 3,
			},
		},
		SideDeck: card.List{},
	}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractEmptyPage(t *testing.T) {
	got := Extract(context.Background(), parse(t, `<html><body><div id="detailtext_main"></div></body></html>`), "https://example.com/")

	require.Equal(t, deck.UnknownName, got.Name)
	require.Equal(t, deck.UnknownID, got.DeckID)
	require.NotNil(t, got.MainDeck)
	require.NotNil(t, got.ExtraDeck)
	require.NotNil(t, got.SideDeck)
	require.Empty(t, got.All())
}

func TestExtractZoneErrors(t *testing.T) {
	p := parse(t, `<html><body><div id="detailtext_main"><p>nothing</p></div></body></html>`)

	_, err := extractZone(p, deck.Main)
	require.ErrorIs(t, err, ErrNoRows)

	_, err = extractZone(p, deck.Side)
	require.ErrorIs(t, err, ErrZoneNotFound)
}

// panicky fails every query below one zone container.
type panicky struct {
	page.Page
	selector string
}

func (p panicky) First(selector string) (page.Scope, bool) {
	if selector == p.selector {
		panic("broken zone")
	}
	return p.Page.First(selector)
}

func TestExtractIsolatesZones(t *testing.T) {
	p := panicky{Page: parse(t, deckPage), selector: "#detailtext_ext"}

	var got deck.Deck
	require.NotPanics(t, func() {
		got = Extract(context.Background(), p, deckURL)
	})
	require.Len(t, got.MainDeck, 3)
	require.Empty(t, got.ExtraDeck)
	require.NotNil(t, got.ExtraDeck)
}

func TestDeckID(t *testing.T) {
	testCases := []struct {
		url      string
		expected string
	}{
		{url: deckURL, expected: "42"},
		{url: "https://example.com/?dno=7", expected: "7"},
		{url: "https://example.com/?dno=", expected: deck.UnknownID},
		{url: "https://example.com/deck", expected: deck.UnknownID},
		{url: "", expected: deck.UnknownID},
	}

	for _, test := range testCases {
		t.Run(test.url, func(t *testing.T) {
			require.Equal(t, test.expected, DeckID(test.url))
		})
	}
}

func TestDeckName(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "skips site headings",
			html:     `<h1>オフィシャルカードゲーム 遊戯王</h1><h1>カードデータベース</h1><h1>My Deck</h1>`,
			expected: "My Deck",
		},
		{
			name:     "strips annotations",
			html:     `<h1>【公開中】Dragons[ CARD GAME ID : 99 ]</h1>`,
			expected: "Dragons",
		},
		{
			name:     "only site headings",
			html:     `<h1>遊戯王ニューロン</h1>`,
			expected: deck.UnknownName,
		},
		{
			name:     "no headings",
			html:     `<p>x</p>`,
			expected: deck.UnknownName,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, DeckName(parse(t, test.html)))
		})
	}
}
