package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/storeseed/internal/config"
	"github.com/Lumos-Labs-HQ/storeseed/internal/database/memstore"
	"github.com/Lumos-Labs-HQ/storeseed/internal/database/mongodb"
	"github.com/Lumos-Labs-HQ/storeseed/internal/seeder"
	"github.com/fatih/color"
)

const connectTimeout = 10 * time.Second

// interruptible cancels ctx on Ctrl-C so the in-flight database call aborts.
func interruptible(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// connect opens the MongoDB adapter named by cfg.
func connect(ctx context.Context, cfg *config.Config) (*mongodb.Adapter, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	adapter := mongodb.New()
	if err := adapter.Connect(ctx, dbURL, cfg.Database.Name); err != nil {
		return nil, err
	}
	color.Green("✅ Connected to MongoDB at %s (database: %s)", adapter.Host(), adapter.Name())
	return adapter, nil
}

func mongoDialer(cfg *config.Config) seeder.Dialer {
	return func(ctx context.Context) (seeder.ClosableStore, error) {
		adapter, err := connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	}
}

func dryRunDialer() seeder.Dialer {
	return func(ctx context.Context) (seeder.ClosableStore, error) {
		color.Yellow("🧪 Dry run: generating into memory, the database is not touched")
		return memstore.New(), nil
	}
}

func seedConfig(c config.Seed) seeder.SeedConfig {
	return seeder.SeedConfig{
		Categories: c.Categories,
		Users:      c.Users,
		Products:   c.Products,
		Orders:     c.Orders,
		Batch:      c.BatchSize,
		RandomSeed: c.RandomSeed,
		Password:   c.Password,
		Verify:     c.Verify,
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	color.New(color.FgYellow).Fprintf(out, "%s [y/N]: ", prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
