package main

import (
	"chat-notifier/internal"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notifier",
	Short: "Background chat notifications for the Status messenger",
	Long: `notifier aggregates new message signals per chat into one notification
each, and reacts to taps and dismissals until stopped.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newRunCmd(), newJournalCmd(), newInspectCmd())
}

// loadConfig reads an optional .env file then the environment.
func loadConfig() (internal.Config, error) {
	_ = godotenv.Load()
	return internal.LoadConfig()
}
