package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"github.com/Lumos-Labs-HQ/storeseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show document counts of the seeded collections",
	Long: `Connect to the database and print how many documents each of the
categories, users, products and orders collections holds.

With --verify the references between collections are checked as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := interruptible(cmd.Context())
		defer stop()

		adapter, err := connect(ctx, cfg)
		if err != nil {
			return &seeder.StageError{Stage: seeder.StateConnecting, Kind: seeder.ConnectionError, Err: err}
		}
		defer adapter.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		for _, collection := range models.Collections {
			n, err := adapter.Count(ctx, collection)
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", collection, err)
			}
			fmt.Fprintf(out, "  %-12s %d\n", collection, n)
		}

		verify, _ := cmd.Flags().GetBool("verify")
		if !verify {
			return nil
		}

		report, err := seeder.Verify(ctx, adapter, nil)
		if err != nil {
			for key, n := range report.Dangling {
				color.Red("  ❌ %s: %d unresolved", key, n)
			}
			return err
		}
		color.Green("\n🔎 All references resolve")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("verify", false, "Also check that references resolve")
}
