package main

import (
	"chat-notifier/domain"
	"chat-notifier/infrastructure/storage"
	"chat-notifier/internal"
	"fmt"
	"io"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newJournalCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print the latest notification operations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = config.JournalLimit
			}

			// A running notifier holds the lock
			opts := badger.DefaultOptions(config.BadgerFilepath).
				WithReadOnly(true).
				WithBypassLockGuard(true).
				WithLoggingLevel(badger.WARNING)
			db, err := badger.Open(opts)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			entries, err := storage.NewJournalRepository(db, logs.GetLoggerFromString(config.LogLevel)).Latest(limit)
			if err != nil {
				return err
			}
			printJournal(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries, JOURNAL_LIMIT when unset")
	return cmd
}

func printJournal(out io.Writer, entries []domain.JournalEntry) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Time", "Kind", "Id", "Notification", "Chat", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range entries {
		row := internal.DefaultMapper(entry)
		table.Append([]string{
			entry.At.Local().Format("2006-01-02 15:04:05.000"),
			row.Kind,
			row.EntityID,
			row.NotificationID,
			row.ChatID,
			row.Detail,
		})
	}
	table.Render()
	fmt.Fprintf(out, "%d entries\n", len(entries))
}
