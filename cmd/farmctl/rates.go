package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/IdleFarm_Go/internal/market"
)

func newRatesCmd() *cobra.Command {
	var window time.Duration
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the current crypto quote and recent market history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if window <= 0 {
				return fmt.Errorf("window must be positive")
			}
			printRates(market.DefaultConfig(), time.Now(), window)
			return nil
		},
	}
	cmd.Flags().DurationVarP(&window, "window", "w", 10*time.Minute, "History window")
	return cmd
}

func printRates(cfg market.Config, now time.Time, window time.Duration) {
	titleColor := color.New(color.FgCyan, color.Bold)
	r := cfg.At(now)

	titleColor.Println("Crypto market")
	fmt.Printf("   Buy:    %d coins\n", r.Buy)
	fmt.Printf("   Sell:   %d coins\n", r.Sell)
	fmt.Printf("   Market: %.2f\n", r.Market)
	fmt.Println()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Time", "Market", "Buy", "Sell"}),
	)
	for _, p := range cfg.History(now.Add(-window), now) {
		q := cfg.At(p.Time)
		table.Append([]string{
			p.Time.Local().Format(time.TimeOnly),
			fmt.Sprintf("%.2f", p.Market),
			fmt.Sprintf("%d", q.Buy),
			fmt.Sprintf("%d", q.Sell),
		})
	}
	table.Render()
}
