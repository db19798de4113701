package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/IdleFarm_Go/internal/bootstrap"
	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/farm"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List crops, machinery and expansion steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := bootstrap.LoadCatalog(cfg)
			if err != nil {
				return err
			}
			printCatalog(cat)
			return nil
		},
	}
}

func printCatalog(cat *catalog.Catalog) {
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Println("Crops")
	crops := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Name", "Growth", "Harvest", "Cost", "Sells"}),
	)
	for _, c := range cat.Crops() {
		crops.Append([]string{
			c.ID,
			c.Emoji + " " + displayName(c.ID, c.Name),
			c.GrowthDuration().String(),
			c.HarvestDuration().String(),
			printer.Sprintf("%d", c.Cost),
			printer.Sprintf("%d", c.SellPrice),
		})
	}
	crops.Render()

	econ := cat.Economy()
	fmt.Println()
	titleColor.Println("Machinery")
	machines := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Name", "Cost", "Resale", "Fuel/Action", "Wear/Action", "Ticks"}),
	)
	for _, m := range cat.Machinery() {
		machines.Append([]string{
			m.ID,
			m.Emoji + " " + displayName(m.ID, m.Name),
			printer.Sprintf("%d", m.Cost),
			printer.Sprintf("%d", m.Cost*econ.ResalePercent/100),
			fmt.Sprintf("%d", m.FuelPerAction),
			fmt.Sprintf("%d", m.IntegrityPerAction),
			fmt.Sprintf("%d", m.TickInterval),
		})
	}
	machines.Render()

	fmt.Println()
	titleColor.Println("Expansions")
	sizes := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Level", "Size", "Plots", "Cost"}),
	)
	for i, s := range cat.Expansions() {
		cost := "-"
		if i > 0 {
			cost = printer.Sprintf("%d", farm.ExpandCost(cat, i-1))
		}
		sizes.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%dx%d", s.Cols, s.Rows),
			fmt.Sprintf("%d", s.Cols*s.Rows),
			cost,
		})
	}
	sizes.Render()
	fmt.Printf("\nMaintenance: %d coins   Tick: %s\n", econ.MaintenanceCost, cat.TickPeriod())
}
