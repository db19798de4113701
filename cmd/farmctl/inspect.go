package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/game"
	"github.com/osse101/IdleFarm_Go/internal/growth"
	"github.com/osse101/IdleFarm_Go/internal/store"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the saved farm: wallet, plots, inventories and machinery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			rev, ok, err := store.Revision(cmd.Context(), s.store, s.cfg.SaveKey)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			fmt.Println(saveLine(s.cfg.SaveKey, rev, ok))
			fmt.Println()
			printFarm(s.cat, s.game.State())
			return nil
		},
	}
}

func printFarm(cat *catalog.Catalog, v game.View) {
	titleColor := color.New(color.FgCyan, color.Bold)
	w := v.World

	titleColor.Println("Wallet")
	fmt.Printf("   Coins:  %s\n", printer.Sprintf("%d", w.Coins))
	fmt.Printf("   Crypto: %s\n", printer.Sprintf("%d", w.Crypto))
	fmt.Printf("   Farm:   level %d of %d (%dx%d)\n", v.Farm.Level, v.Farm.MaxLevel, v.Farm.Cols, v.Farm.Rows)
	if v.Farm.NextCost > 0 {
		fmt.Printf("   Next expansion: %s coins\n", printer.Sprintf("%d", v.Farm.NextCost))
	}
	fmt.Println()

	titleColor.Println("Plots")
	plots := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Crop", "Phase", "Progress", "Remaining", "Needs"}),
	)
	for i, p := range v.Plots {
		crop := "-"
		if !p.Empty {
			c, _ := cat.Crop(p.SeedID)
			crop = displayName(p.SeedID, c.Name)
		}
		plots.Append([]string{
			fmt.Sprintf("%d", i),
			crop,
			string(p.Phase),
			fmt.Sprintf("%.0f%%", p.Progress*100),
			remaining(p),
			needs(p),
		})
	}
	plots.Render()
	fmt.Println()

	titleColor.Println("Inventory")
	inv := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Crop", "Seeds", "Barn"}),
	)
	for _, c := range cat.Crops() {
		if w.Warehouse[c.ID] == 0 && w.Barn[c.ID] == 0 {
			continue
		}
		inv.Append([]string{
			displayName(c.ID, c.Name),
			printer.Sprintf("%d", w.Warehouse[c.ID]),
			printer.Sprintf("%d", w.Barn[c.ID]),
		})
	}
	inv.Render()
	fmt.Println()

	titleColor.Println("Machinery")
	machines := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Kind", "Garage", "Field", "Avg Fuel", "Avg Integrity"}),
	)
	kinds := make([]string, 0, len(v.Pools))
	for id := range v.Pools {
		kinds = append(kinds, id)
	}
	sort.Strings(kinds)
	for _, id := range kinds {
		m := v.Pools[id]
		if m.Garage.Count+m.Field.Count == 0 {
			continue
		}
		mt, _ := cat.MachineryType(id)
		machines.Append([]string{
			displayName(id, mt.Name),
			fmt.Sprintf("%d", m.Garage.Count),
			fmt.Sprintf("%d", m.Field.Count),
			fmt.Sprintf("%.1f", m.Field.AvgFuel),
			fmt.Sprintf("%.1f", m.Field.AvgIntegrity),
		})
	}
	machines.Render()

	if n := len(w.TradeHistory); n > 0 {
		last := w.TradeHistory[n-1]
		fmt.Printf("\n%d trades, last: %s %d at %d\n", n, last.Type, last.Amount, last.Rate)
	}
}

// saveLine names the save and, when the store counts writes, how often it was written.
func saveLine(key string, rev int64, counted bool) string {
	switch {
	case !counted:
		return fmt.Sprintf("Save %q", key)
	case rev == 0:
		return fmt.Sprintf("Save %q (never written)", key)
	default:
		return fmt.Sprintf("Save %q, revision %d", key, rev)
	}
}

func remaining(p growth.State) string {
	switch {
	case p.Empty:
		return "-"
	case p.Collecting:
		return fmt.Sprintf("%ds", p.CollectionRemainingSeconds)
	default:
		return fmt.Sprintf("%ds", p.RemainingSeconds)
	}
}

func needs(p growth.State) string {
	var out string
	for _, n := range []struct {
		on    bool
		label string
	}{
		{p.NeedsFertilizing, "fertilize"},
		{p.NeedsWeeding, "weed"},
		{p.NeedsWatering, "water"},
	} {
		if !n.on {
			continue
		}
		if out != "" {
			out += ","
		}
		out += n.label
	}
	return out
}
