package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/neuronkit/ygodeck/internal/images"
	"github.com/spf13/cobra"
)

// successesShown caps how many downloaded files are listed
const successesShown = 5

var downloadCmd = &cobra.Command{
	Use:   "download <deck-id|path>",
	Short: "Download the card images of a saved deck",
	Long: `Download fetches the image of every card of a saved deck into the image
directory. Images that are already present are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, _, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		summary := newDownloader().DownloadDeck(cmd.Context(), d, concurrency)
		printDownloadSummary(summary, successesShown)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().IntP("concurrency", "c", images.DefaultConcurrency, "Images fetched per batch")
}

func newDownloader() *images.Downloader {
	return images.NewDownloader(cfg.ImageDir, images.Options{
		Timeout:    cfg.ImageTimeout(),
		BatchDelay: cfg.BatchDelay(),
		UserAgent:  cfg.UserAgent,
	})
}

// printDownloadSummary prints per zone totals and every failure, followed by
// at most successes of the saved files.
func printDownloadSummary(s images.DeckSummary, successes int) {
	fmt.Println("Image Download:")
	fmt.Println("---------------")
	for _, z := range s.Zones {
		if z.Total() == 0 {
			continue
		}
		fmt.Printf("%-6s %s downloaded, %s skipped, %s failed\n",
			z.Zone.String()+":",
			color.GreenString("%d", z.Downloaded),
			color.YellowString("%d", z.Skipped),
			color.RedString("%d", z.Failed))
	}
	fmt.Printf("Total: %d/%d images available in %s\n", s.Total.Succeeded(), s.Total.Total(), cfg.ImageDir)

	if s.Total.Failed > 0 {
		fmt.Println("\nFailed:")
		for _, r := range s.Results {
			if !r.Success {
				fmt.Printf("  ❌ %s [%s]: %s\n", r.Name, r.Zone, r.Error)
			}
		}
	}

	if successes > 0 {
		shown := 0
		for _, r := range s.Results {
			if !r.Success || shown == successes {
				continue
			}
			if shown == 0 {
				fmt.Println("\nSaved:")
			}
			fmt.Printf("  ✅ %s → %s\n", r.Name, r.FilePath)
			shown++
		}
		if rest := s.Total.Succeeded() - shown; rest > 0 {
			fmt.Printf("  ... and %d more\n", rest)
		}
	}
}
