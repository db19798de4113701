package main

import (
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/IdleFarm_Go/internal/event"
)

func newDeadLettersCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "deadletters",
		Short: "List events that farmd gave up delivering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			entries, err := event.ReadDeadLetters(cfg.DeadLetterPath)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				color.Green("No dead letters in %s", cfg.DeadLetterPath)
				return nil
			}
			printDeadLetters(newest(entries, limit))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most this many of the newest entries (0 for all)")
	return cmd
}

// newest keeps the last n entries; n <= 0 keeps everything.
func newest(entries []event.DeadLetterEntry, n int) []event.DeadLetterEntry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}

func printDeadLetters(entries []event.DeadLetterEntry) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"When", "Type", "Attempts", "Error"}),
	)
	for _, e := range entries {
		table.Append([]string{
			e.Timestamp.Local().Format(time.DateTime),
			string(e.Event.Type),
			strconv.Itoa(e.Attempts),
			e.LastError,
		})
	}
	table.Render()
}
