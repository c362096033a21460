package cmd

import (
	"fmt"
	"io"

	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"github.com/Lumos-Labs-HQ/storeseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedDryRun bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Clear and regenerate the shop collections",
	Long: `
Connect to the database, delete every document in the categories, users,
products and orders collections, then generate fresh synthetic data in
dependency order:

  categories → users → products (reference categories) → orders (reference users and products)

Counts come from flags, NUM_CATEGORIES / NUM_USERS / NUM_PRODUCTS / NUM_ORDERS,
or the seed section of storeseed.config.json. Any failing stage aborts the run.
Existing data is not restored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := interruptible(cmd.Context())
		defer stop()

		dial := mongoDialer(cfg)
		if seedDryRun {
			dial = dryRunDialer()
		}

		result, err := seeder.RunSession(ctx, dial, seedConfig(cfg.Seed))
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), result)
		return nil
	},
}

func printReport(out io.Writer, result *seeder.Result) {
	bold := color.New(color.Bold)
	fmt.Fprintln(out)
	bold.Fprintf(out, "📊 Seed report (run %s)\n", result.RunID)
	for _, collection := range models.Collections {
		fmt.Fprintf(out, "  %-12s %d\n", collection, result.Counts[collection])
	}
	fmt.Fprintf(out, "  %-12s %s\n", "duration", result.Duration)
}

func init() {
	rootCmd.AddCommand(seedCmd)

	flags := seedCmd.Flags()
	flags.Int("categories", seeder.DefaultCategories, "Number of categories to generate")
	flags.Int("users", seeder.DefaultUsers, "Number of users to generate")
	flags.Int("products", seeder.DefaultProducts, "Number of products to generate")
	flags.Int("orders", seeder.DefaultOrders, "Number of orders to generate")
	flags.Int("batch", seeder.DefaultBatch, "Documents per bulk insert")
	flags.Uint64("seed", 0, "Random seed for reproducible data (0 = random)")
	flags.Bool("verify", false, "Check counts and references after seeding")
	flags.BoolVar(&seedDryRun, "dry-run", false, "Generate into memory without touching the database")

	viper.BindPFlag("seed.categories", flags.Lookup("categories"))
	viper.BindPFlag("seed.users", flags.Lookup("users"))
	viper.BindPFlag("seed.products", flags.Lookup("products"))
	viper.BindPFlag("seed.orders", flags.Lookup("orders"))
	viper.BindPFlag("seed.batch_size", flags.Lookup("batch"))
	viper.BindPFlag("seed.random_seed", flags.Lookup("seed"))
	viper.BindPFlag("seed.verify", flags.Lookup("verify"))
}
