package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/neuronkit/ygodeck/internal/config"
	"github.com/neuronkit/ygodeck/internal/deck"
	"github.com/neuronkit/ygodeck/internal/extractor"
	"github.com/neuronkit/ygodeck/internal/page"
	"github.com/neuronkit/ygodeck/internal/scraper"
	"github.com/neuronkit/ygodeck/internal/validator"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Scrape a deck page and save it as JSON",
	Long: `Scrape loads a deck recipe page, extracts the main, extra and side deck and
writes it to deck_<id>.json in the output directory. Card images are then
downloaded into the image directory and the deck is validated.

Without a url the configured default is used (DEFAULT_URL, .env or default_url
in the config file).

Examples:
  ygodeck scrape "https://www.db.yugioh-card.com/yugiohdb/member_deck.action?cgid=...&dno=12"
  ygodeck scrape --no-download`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := cfg.DefaultURL
		if len(args) == 1 {
			url = args[0]
		}
		if url == "" {
			return fmt.Errorf("no deck url given and none configured (set %s or default_url in %s)",
				config.EnvDefaultURL, config.GetConfigFilePath())
		}

		noDownload, _ := cmd.Flags().GetBool("no-download")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		if concurrency <= 0 {
			concurrency = cfg.Concurrency
		}

		ctx := cmd.Context()
		s := scraper.New(page.NewHTTPRenderer(page.HTTPOptions{
			Timeout:          cfg.PageTimeout(),
			UserAgent:        cfg.UserAgent,
			CloudflareBypass: cfg.CloudflareBypass,
			ReadySelectors:   extractor.ZoneSelectors(),
		}))
		defer s.Close()

		res := s.Scrape(ctx, url)
		if !res.Success {
			return fmt.Errorf("scrape failed: %s", res.Error)
		}

		path, err := deck.SaveResult(cfg.OutputDir, res)
		if err != nil {
			return err
		}
		printDeckSummary(*res.Deck, path)

		if !noDownload {
			summary := newDownloader().DownloadDeck(ctx, *res.Deck, concurrency)
			printDownloadSummary(summary, 0)
		}

		fmt.Println()
		printReport(res.Deck.Name, validator.ValidateDeck(*res.Deck))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().Bool("no-download", false, "Skip downloading card images")
	scrapeCmd.Flags().IntP("concurrency", "c", 0, "Images fetched per batch (default from config)")
}

func printDeckSummary(d deck.Deck, path string) {
	count := deck.Stats(d).Count

	fmt.Println()
	fmt.Println(color.CyanString("Deck:  ") + color.HiWhiteString("%s", d.Name))
	fmt.Println(color.CyanString("ID:    ") + color.HiWhiteString("%s", d.DeckID))
	fmt.Printf("%s%d entries, %d cards\n", color.CyanString("Main:  "), len(d.MainDeck), count.Main)
	fmt.Printf("%s%d entries, %d cards\n", color.CyanString("Extra: "), len(d.ExtraDeck), count.Extra)
	fmt.Printf("%s%d entries, %d cards\n", color.CyanString("Side:  "), len(d.SideDeck), count.Side)
	fmt.Println(color.CyanString("Saved: ") + path)
	fmt.Println()
}
