// Command farmctl inspects and manages a farm save without the daemon running.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	storeDriver string
	storePath   string
	saveKey     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "farmctl",
		Short: "Idle farm save inspector",
		Long: `Reads the same configuration as farmd (environment or .env) and works
directly against the configured save store. Stop farmd before using reset.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&storeDriver, "driver", "", "Override STORE_DRIVER")
	rootCmd.PersistentFlags().StringVar(&storePath, "path", "", "Override STORE_PATH")
	rootCmd.PersistentFlags().StringVar(&saveKey, "key", "", "Override SAVE_KEY")

	rootCmd.AddCommand(newRatesCmd(), newCatalogCmd(), newInspectCmd(), newResetCmd(), newDeadLettersCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
