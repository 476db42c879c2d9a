package main

import (
	"chat-notifier/infrastructure/storage"
	"chat-notifier/internal"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

// newInspectCmd serves the journal page without a running notifier.
func newInspectCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Serve the journal inspector page in read-only mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			if port <= 0 {
				port = config.DebugPort
			}
			if port <= 0 {
				return fmt.Errorf("no port: set --port or DEBUG_PORT")
			}
			log := logs.GetLoggerFromString(config.LogLevel)

			// BypassLockGuard allows opening while the notifier holds the lock
			opts := badger.DefaultOptions(config.BadgerFilepath).
				WithReadOnly(true).
				WithBypassLockGuard(true).
				WithLoggingLevel(badger.WARNING)
			db, err := badger.Open(opts)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			viewerStats := func() map[string]any {
				return map[string]any{
					"Status": "Viewer Mode (Read-Only)",
					"Time":   time.Now().Format(time.RFC822),
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			internal.StartDebugServer(ctx, log, port, "/inspect",
				internal.InspectHandler(storage.NewJournalRepository(db, log), config.JournalLimit, nil, viewerStats))
			fmt.Fprintf(cmd.OutOrStdout(), "Viewer started at http://localhost:%d/inspect\n", port)
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port, DEBUG_PORT when unset")
	return cmd
}
