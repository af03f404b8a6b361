package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neuronkit/ygodeck/internal/ansiart"
	"github.com/neuronkit/ygodeck/internal/card"
	"github.com/neuronkit/ygodeck/internal/config"
	"github.com/neuronkit/ygodeck/internal/deck"
	"github.com/neuronkit/ygodeck/internal/images"
)

var showCmd = &cobra.Command{
	Use:   "show <deck-id|path> <card name>",
	Short: "Display a card of a saved deck with ANSI art",
	Long: `Show displays the details of one card of a saved deck next to terminal art
rendered from its downloaded image. Run 'ygodeck download' first to fetch the
images; without one only the details are shown.

Examples:
  ygodeck show 12 青眼の白龍
  ygodeck show ./deck_12.json "No.39 希望皇ホープ"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		width, height, err := artSize(width)
		if err != nil {
			return err
		}

		d, _, err := loadDeck(args[0])
		if err != nil {
			return err
		}

		name := strings.Join(args[1:], " ")
		c, zone, ok := d.Find(name)
		if !ok {
			return fmt.Errorf("card not found in %s: %s", d.Name, name)
		}

		imagePath := filepath.Join(cfg.ImageDir, images.FileName(c.Common().Name))
		cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")

		art := ""
		if _, err := os.Stat(imagePath); err == nil {
			art, err = ansiart.RenderFile(imagePath, cacheDir, width, height)
			if err != nil {
				return fmt.Errorf("error rendering ANSI art: %w", err)
			}
		}

		displayCard(c, zone, art, d.Name)
		if art == "" {
			fmt.Println(color.YellowString("  No image at %s, run 'ygodeck download %s' first.", imagePath, d.DeckID))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().IntP("width", "w", ansiart.DefaultWidth, "Width of the art in terminal columns")
}

// artSize derives the art height from width, keeping the card aspect ratio.
func artSize(width int) (int, int, error) {
	if width < 1 {
		return 0, 0, fmt.Errorf("invalid --width %d: must be at least 1", width)
	}
	return width, max(1, width*ansiart.DefaultHeight/ansiart.DefaultWidth), nil
}

func field(label, value string) string {
	return color.CyanString("%-10s", label) + color.HiWhiteString("%s", value)
}

func cardInfo(c card.Card, zone deck.Zone, deckName string) []string {
	b := c.Common()
	lines := []string{
		field("Card:", b.Name),
		field("Deck:", deckName),
		field("Zone:", zone.String()),
		field("Kind:", c.Kind().String()),
		field("Copies:", fmt.Sprint(b.Quantity)),
	}
	if b.CardID != "" {
		lines = append(lines, field("ID:", b.CardID))
	}

	if m, ok := card.MonsterOf(c); ok {
		types := make([]string, len(m.MonsterTypes))
		for i, t := range m.MonsterTypes {
			types[i] = string(t)
		}
		lines = append(lines,
			field("Attribute:", string(m.Attribute)),
			field("Race:", string(m.Race)),
			field("Types:", strings.Join(types, "／")),
		)
	}

	switch v := c.(type) {
	case card.NormalMonster:
		lines = append(lines, field("Level:", fmt.Sprint(v.Level)), field("ATK/DEF:", fmt.Sprintf("%d / %d", v.Attack, v.Defense)))
	case card.XyzMonster:
		lines = append(lines, field("Rank:", fmt.Sprint(v.Rank)), field("ATK/DEF:", fmt.Sprintf("%d / %d", v.Attack, v.Defense)))
	case card.LinkMonster:
		lines = append(lines, field("Link:", fmt.Sprint(v.Link)), field("ATK:", fmt.Sprint(v.Attack)))
	case card.SpellCard:
		lines = append(lines, field("Spell:", string(v.SpellType)))
	case card.TrapCard:
		lines = append(lines, field("Trap:", string(v.TrapType)))
	}
	return lines
}

// displayCard prints the art on the left and the card details on the right
func displayCard(c card.Card, zone deck.Zone, art, deckName string) {
	var artLines []string
	if art != "" {
		artLines = strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	}
	maxArtWidth := 0
	for _, line := range artLines {
		maxArtWidth = max(maxArtWidth, text.RuneWidthWithoutEscSequences(line))
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	spacing := 4
	infoStartCol := 0
	if maxArtWidth > 0 {
		infoStartCol = maxArtWidth + spacing
	}
	infoWidth := max(width-infoStartCol-2, 20)

	infoLines := cardInfo(c, zone, deckName)
	if t := c.Common().CardText; t != "" {
		infoLines = append(infoLines, "", color.CyanString("Text:"))
		infoLines = append(infoLines, wrapText(t, infoWidth)...)
	}

	fmt.Println()
	for i := 0; i < max(len(artLines), len(infoLines)); i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStartCol-text.RuneWidthWithoutEscSequences(artLines[i])))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}
		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}
		fmt.Println()
	}
	fmt.Println()
}

// wrapText breaks s into lines of at most width terminal columns. Card text is
// mostly unspaced Japanese, so lines break between any two characters.
func wrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var line strings.Builder
		lineWidth := 0
		for _, r := range strings.TrimSpace(para) {
			w := text.RuneWidth(r)
			if lineWidth+w > width && lineWidth > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			line.WriteRune(r)
			lineWidth += w
		}
		lines = append(lines, line.String())
	}
	return lines
}
