package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/storeseed/internal/config"
	"github.com/Lumos-Labs-HQ/storeseed/internal/seeder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDryRun(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"seed", "--dry-run", "--quiet", "--verify",
		"--categories", "2", "--users", "3", "--products", "4", "--orders", "5",
		"--seed", "7",
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	report := out.String()
	assert.Contains(t, report, "Seed report")
	assert.Regexp(t, `categories\s+2`, report)
	assert.Regexp(t, `users\s+3`, report)
	assert.Regexp(t, `products\s+4`, report)
	assert.Regexp(t, `orders\s+5`, report)
}

func TestConfigCommandHidesPassword(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "provider: mongodb")
	assert.Contains(t, out.String(), "url_env: MONGO_URL")
	assert.NotContains(t, out.String(), "password")
}

func TestSeedConfigMapping(t *testing.T) {
	got := seedConfig(config.Seed{
		Categories: 1,
		Users:      2,
		Products:   3,
		Orders:     4,
		BatchSize:  5,
		RandomSeed: 6,
		Password:   "secret",
		Verify:     true,
	})

	assert.Equal(t, seeder.SeedConfig{
		Categories: 1,
		Users:      2,
		Products:   3,
		Orders:     4,
		Batch:      5,
		RandomSeed: 6,
		Password:   "secret",
		Verify:     true,
	}, got)
}

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, &seeder.Result{
		RunID:    "run-1",
		Counts:   map[string]int{"categories": 20, "orders": 1000},
		Duration: 1500 * time.Millisecond,
	})

	assert.Contains(t, out.String(), "run-1")
	assert.Regexp(t, `categories\s+20`, out.String())
	assert.Regexp(t, `users\s+0`, out.String())
	assert.Contains(t, out.String(), "1.5s")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, confirm(strings.NewReader("yes\n"), &out, "Proceed?"))
	assert.True(t, confirm(strings.NewReader("Y\n"), &out, "Proceed?"))
	assert.False(t, confirm(strings.NewReader("\n"), &out, "Proceed?"))
	assert.False(t, confirm(strings.NewReader(""), &out, "Proceed?"))
	assert.Contains(t, out.String(), "Proceed? [y/N]")
}

func TestInterruptCancelsContext(t *testing.T) {
	ctx, stop := interruptible(context.Background())
	defer stop()

	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, self.Signal(os.Interrupt))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled by interrupt")
	}
}
