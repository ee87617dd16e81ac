// Package main provides the billbuddy CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	offline    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "billbuddy",
		Short:         "Youth in Government bill drafting assistant",
		Long:          "billbuddy helps students draft model legislation: it formats bills, reviews drafts, coaches individual sections and gathers research highlights. It works offline and uses a language model when one is configured.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.offline, "offline", false, "Never call a language model")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newFeedbackCmd(opts),
		newCoachCmd(opts),
		newResearchCmd(opts),
		newReviewCmd(opts),
		newFormatCmd(),
		newSectionsCmd(),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
