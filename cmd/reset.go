package cmd

import (
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"github.com/Lumos-Labs-HQ/storeseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every document in the seeded collections",
	Long: `
Clear the categories, users, products and orders collections without
generating new data. Collections are cleared dependents first.

⚠️  WARNING: This permanently deletes all documents in those collections!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			prompt := fmt.Sprintf("Delete all documents in %s?", strings.Join(models.Collections, ", "))
			if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
				color.Yellow("Reset cancelled")
				return nil
			}
		}

		ctx, stop := interruptible(cmd.Context())
		defer stop()

		adapter, err := connect(ctx, cfg)
		if err != nil {
			return &seeder.StageError{Stage: seeder.StateConnecting, Kind: seeder.ConnectionError, Err: err}
		}
		defer adapter.Close()

		s, err := seeder.New(adapter, seedConfig(cfg.Seed))
		if err != nil {
			return err
		}
		if err := s.Reset(ctx); err != nil {
			return &seeder.StageError{Stage: seeder.StateResetting, Kind: seeder.ResetError, Err: err}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
