package cmd

import (
	"context"
	"fmt"

	"github.com/neuronkit/ygodeck/internal/config"
	"github.com/neuronkit/ygodeck/internal/logger"
	"github.com/spf13/cobra"
)

// cfg is loaded before any subcommand runs
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ygodeck",
	Short: "Tool for scraping and inspecting Yu-Gi-Oh! deck recipes",
	Long: `ygodeck is a command-line tool for scraping published deck recipes from the
official Yu-Gi-Oh! card database. It saves each deck as JSON, downloads the card
images and checks every card against the known card vocabulary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			c.LogLevel = level
		}
		logger.Init(c.LogLevel)
		cfg = c
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}
