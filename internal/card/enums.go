package card

import "slices"

// CardType is the top level category printed on a card.
type CardType string

const (
	TypeMonster CardType = "モンスター"
	TypeSpell   CardType = "魔法"
	TypeTrap    CardType = "罠"
)

// Attribute is a monster attribute (光, 闇, ...)
type Attribute string

const (
	AttributeLight  Attribute = "光"
	AttributeDark   Attribute = "闇"
	AttributeFire   Attribute = "炎"
	AttributeWater  Attribute = "水"
	AttributeEarth  Attribute = "地"
	AttributeWind   Attribute = "風"
	AttributeDivine Attribute = "神"
)

// Race is a monster type such as 魔法使い族.
type Race string

const (
	RaceSpellcaster  Race = "魔法使い族"
	RaceDragon       Race = "ドラゴン族"
	RaceZombie       Race = "アンデット族"
	RaceWarrior      Race = "戦士族"
	RaceBeastWarrior Race = "獣戦士族"
	RaceBeast        Race = "獣族"
	RaceWingedBeast  Race = "鳥獣族"
	RaceFiend        Race = "悪魔族"
	RaceFairy        Race = "天使族"
	RaceInsect       Race = "昆虫族"
	RaceDinosaur     Race = "恐竜族"
	RaceReptile      Race = "爬虫類族"
	RaceFish         Race = "魚族"
	RaceSeaSerpent   Race = "海竜族"
	RaceAqua         Race = "水族"
	RacePyro         Race = "炎族"
	RaceThunder      Race = "雷族"
	RaceRock         Race = "岩石族"
	RacePlant        Race = "植物族"
	RaceMachine      Race = "機械族"
	RacePsychic      Race = "サイキック族"
	RaceDivineBeast  Race = "幻神獣族"
	RaceCreatorGod   Race = "創造神族"
	RaceWyrm         Race = "幻竜族"
	RaceCyberse      Race = "サイバース族"
	RaceIllusion     Race = "幻想魔族"
)

// MonsterType is a monster qualifier (効果, 融合, エクシーズ, ...) printed after the race.
type MonsterType string

const (
	MonsterNormal   MonsterType = "通常"
	MonsterEffect   MonsterType = "効果"
	MonsterFusion   MonsterType = "融合"
	MonsterSynchro  MonsterType = "シンクロ"
	MonsterXyz      MonsterType = "エクシーズ"
	MonsterLink     MonsterType = "リンク"
	MonsterRitual   MonsterType = "儀式"
	MonsterToon     MonsterType = "トゥーン"
	MonsterSpirit   MonsterType = "スピリット"
	MonsterUnion    MonsterType = "ユニオン"
	MonsterGemini   MonsterType = "デュアル"
	MonsterTuner    MonsterType = "チューナー"
	MonsterFlip     MonsterType = "リバース"
	MonsterPendulum MonsterType = "ペンデュラム"
	MonsterSpecial  MonsterType = "特殊召喚"
)

type SpellType string

const (
	SpellNormal     SpellType = "通常魔法"
	SpellContinuous SpellType = "永続魔法"
	SpellQuickPlay  SpellType = "速攻魔法"
	SpellField      SpellType = "フィールド魔法"
	SpellEquip      SpellType = "装備魔法"
	SpellRitual     SpellType = "儀式魔法"
)

type TrapType string

const (
	TrapNormal     TrapType = "通常罠"
	TrapContinuous TrapType = "永続罠"
	TrapCounter    TrapType = "カウンター罠"
)

var (
	cardTypes  = []CardType{TypeMonster, TypeSpell, TypeTrap}
	attributes = []Attribute{
		AttributeLight, AttributeDark, AttributeFire, AttributeWater,
		AttributeEarth, AttributeWind, AttributeDivine,
	}
	races = []Race{
		RaceSpellcaster, RaceDragon, RaceZombie, RaceWarrior, RaceBeastWarrior,
		RaceBeast, RaceWingedBeast, RaceFiend, RaceFairy, RaceInsect,
		RaceDinosaur, RaceReptile, RaceFish, RaceSeaSerpent, RaceAqua,
		RacePyro, RaceThunder, RaceRock, RacePlant, RaceMachine,
		RacePsychic, RaceDivineBeast, RaceCreatorGod, RaceWyrm, RaceCyberse,
		RaceIllusion,
	}
	monsterTypes = []MonsterType{
		MonsterNormal, MonsterEffect, MonsterFusion, MonsterSynchro, MonsterXyz,
		MonsterLink, MonsterRitual, MonsterToon, MonsterSpirit, MonsterUnion,
		MonsterGemini, MonsterTuner, MonsterFlip, MonsterPendulum, MonsterSpecial,
	}
	spellTypes = []SpellType{
		SpellNormal, SpellContinuous, SpellQuickPlay, SpellField, SpellEquip, SpellRitual,
	}
	trapTypes = []TrapType{TrapNormal, TrapContinuous, TrapCounter}
)

func (t CardType) Valid() bool    { return slices.Contains(cardTypes, t) }
func (a Attribute) Valid() bool   { return slices.Contains(attributes, a) }
func (r Race) Valid() bool        { return slices.Contains(races, r) }
func (m MonsterType) Valid() bool { return slices.Contains(monsterTypes, m) }
func (s SpellType) Valid() bool   { return slices.Contains(spellTypes, s) }
func (t TrapType) Valid() bool    { return slices.Contains(trapTypes, t) }

// The accessors below return copies so the tables themselves can't be modified.

func CardTypes() []CardType       { return slices.Clone(cardTypes) }
func Attributes() []Attribute     { return slices.Clone(attributes) }
func Races() []Race               { return slices.Clone(races) }
func MonsterTypes() []MonsterType { return slices.Clone(monsterTypes) }
func SpellTypes() []SpellType     { return slices.Clone(spellTypes) }
func TrapTypes() []TrapType       { return slices.Clone(trapTypes) }
