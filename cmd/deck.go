package cmd

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/neuronkit/ygodeck/internal/card"
	"github.com/neuronkit/ygodeck/internal/config"
	"github.com/neuronkit/ygodeck/internal/deck"
	"github.com/neuronkit/ygodeck/internal/extractor"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the decks in your output directory",
	Long:  `Commands for listing, summarising and searching saved decks.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
			fmt.Printf("Output directory %s does not exist.\n", cfg.OutputDir)
			fmt.Println("Run 'ygodeck deck init' to create it.")
			return nil
		}

		snapshots, err := deck.ListSnapshots(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("error reading output directory: %w", err)
		}
		if len(snapshots) == 0 {
			fmt.Println("No decks found in", cfg.OutputDir)
			fmt.Println("Run 'ygodeck scrape <url>' to add one.")
			return nil
		}

		defaultID := extractor.DeckID(cfg.DefaultURL)

		t := newTable()
		t.AppendHeader(table.Row{"", "ID", "Name", "Main", "Extra", "Side", "Scraped"})
		for _, s := range snapshots {
			r := s.Result
			if r.Deck == nil {
				t.AppendRow(table.Row{"", "-", "failed: " + r.Error, "", "", "", formatTime(r.Timestamp)})
				continue
			}
			marker := ""
			if r.Deck.DeckID == defaultID {
				marker = "*"
			}
			count := deck.Stats(*r.Deck).Count
			t.AppendRow(table.Row{marker, r.Deck.DeckID, r.Deck.Name, count.Main, count.Extra, count.Side, formatTime(r.Timestamp)})
		}
		t.Render()
		return nil
	},
}

var deckStatsCmd = &cobra.Command{
	Use:   "stats <deck-id|path>",
	Short: "Show card statistics of a saved deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, _, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		s := deck.Stats(d)

		t := newTable()
		t.SetTitle(d.Name)
		t.AppendHeader(table.Row{"Zone", "Cards"})
		t.AppendRows([]table.Row{
			{deck.Main, s.Count.Main},
			{deck.Extra, s.Count.Extra},
			{deck.Side, s.Count.Side},
		})
		t.AppendFooter(table.Row{"Total", s.Count.Total})
		t.Render()

		printDistribution("Card Type", s.Types)
		printDistribution("Attribute", s.Attributes)
		printDistribution("Race", s.Races)
		printDistribution("Level", s.Levels)
		printDistribution("Rank", s.Ranks)
		printDistribution("Link", s.Links)
		printDistribution("ATK", s.Attacks)
		return nil
	},
}

var deckSearchCmd = &cobra.Command{
	Use:   "search <deck-id|path>",
	Short: "Search the cards of a saved deck",
	Long: `Search lists the cards of a saved deck matching every given filter.

Examples:
  ygodeck deck search 12 --attribute 光 --race ドラゴン族
  ygodeck deck search 12 --type 魔法 --spell-type 速攻魔法
  ygodeck deck search 12 --rank 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, _, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		criteria, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}

		matches := deck.Search(d, criteria)
		if len(matches) == 0 {
			fmt.Println("No matching cards.")
			return nil
		}

		t := newTable()
		t.AppendHeader(table.Row{"Zone", "Name", "Qty", "Kind", "Details"})
		for _, m := range matches {
			c := m.Card.Common()
			t.AppendRow(table.Row{m.Zone, c.Name, c.Quantity, m.Card.Kind(), details(m.Card)})
		}
		t.AppendFooter(table.Row{"", "", len(matches), "", ""})
		t.Render()
		return nil
	},
}

// deckSetURLCmd represents the deck set-url command
var deckSetURLCmd = &cobra.Command{
	Use:   "set-url <url>",
	Short: "Set the default deck url used by scrape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		if extractor.DeckID(url) == deck.UnknownID {
			return fmt.Errorf("not a deck url (no dno parameter): %s", url)
		}
		if err := config.SetDefaultURL(url); err != nil {
			return fmt.Errorf("error setting default url: %w", err)
		}
		fmt.Printf("Default deck url set to: %s\n", url)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the output and image directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, dir := range []string{cfg.OutputDir, cfg.ImageDir} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("error creating %s: %w", dir, err)
			}
		}

		fmt.Println("Decks are saved to:", cfg.OutputDir)
		fmt.Println("Images are saved to:", cfg.ImageDir)
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckStatsCmd)
	deckCmd.AddCommand(deckSearchCmd)
	deckCmd.AddCommand(deckSetURLCmd)
	deckCmd.AddCommand(deckInitCmd)

	addSearchFlags(deckSearchCmd)
}

func addSearchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "Name contains")
	f.String("type", "", "Card type (モンスター, 魔法, 罠)")
	f.String("attribute", "", "Monster attribute")
	f.String("race", "", "Monster race")
	f.String("monster-type", "", "Monster sub-type")
	f.String("spell-type", "", "Spell type")
	f.String("trap-type", "", "Trap type")
	f.Int("level", 0, "Level")
	f.Int("rank", 0, "Rank")
	f.Int("link", 0, "Link rating")
	f.Int("atk", 0, "Attack")
	f.Int("def", 0, "Defense")
}

// loadDeck resolves a deck id or path and loads the snapshot behind it.
func loadDeck(deckOrPath string) (deck.Deck, string, error) {
	path, err := deck.ResolvePath(cfg.OutputDir, deckOrPath)
	if err != nil {
		return deck.Deck{}, "", err
	}
	d, err := deck.LoadDeck(path)
	if err != nil {
		return deck.Deck{}, "", fmt.Errorf("error loading deck: %w", err)
	}
	return d, path, nil
}

func criteriaFromFlags(cmd *cobra.Command) (deck.Criteria, error) {
	f := cmd.Flags()
	str := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}
	num := func(name string) *int {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetInt(name)
		return &v
	}

	cr := deck.Criteria{
		Name:        str("name"),
		Type:        card.CardType(str("type")),
		Attribute:   card.Attribute(strings.TrimSuffix(str("attribute"), "属性")),
		Race:        card.Race(str("race")),
		MonsterType: card.MonsterType(str("monster-type")),
		SpellType:   card.SpellType(str("spell-type")),
		TrapType:    card.TrapType(str("trap-type")),
		Level:       num("level"),
		Rank:        num("rank"),
		Link:        num("link"),
		Attack:      num("atk"),
		Defense:     num("def"),
	}

	if cr.Type != "" && !cr.Type.Valid() {
		return cr, fmt.Errorf("unknown card type %q", cr.Type)
	}
	return cr, nil
}

// details is the one line summary of the shape specific fields.
func details(c card.Card) string {
	switch v := c.(type) {
	case card.NormalMonster:
		return fmt.Sprintf("%s %s ★%d %d/%d", v.Attribute, v.Race, v.Level, v.Attack, v.Defense)
	case card.XyzMonster:
		return fmt.Sprintf("%s %s ☆%d %d/%d", v.Attribute, v.Race, v.Rank, v.Attack, v.Defense)
	case card.LinkMonster:
		return fmt.Sprintf("%s %s LINK-%d %d", v.Attribute, v.Race, v.Link, v.Attack)
	case card.SpellCard:
		return string(v.SpellType)
	case card.TrapCard:
		return string(v.TrapType)
	}
	return ""
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// printDistribution prints a two column table of counts, largest first.
func printDistribution[K cmp.Ordered](title string, counts map[K]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]K, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	t := newTable()
	t.AppendHeader(table.Row{title, "Cards"})
	for _, k := range keys {
		label := fmt.Sprint(k)
		if label == "" {
			label = "-"
		}
		t.AppendRow(table.Row{label, counts[k]})
	}
	t.Render()
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format(time.DateTime)
}
