package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stockmeta",
		Short: "Stock photo metadata generation and SEO optimization tool",
		Long: `Stockmeta generates marketing metadata for stock photo batches using
Gemini vision models, scores and reorders keywords for discoverability,
and exports platform-specific CSV files for Shutterstock, Adobe Stock,
Freepik and Vecteezy.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}
