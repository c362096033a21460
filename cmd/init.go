package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/storeseed/template"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var initMongoURL string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create storeseed.config.json and a MONGO_URL entry in .env",
	Long: `Write a storeseed.config.json with the default seed counts and make sure
.env defines the connection string variable. An existing .env keeps its
variables. An existing config file is only replaced with --force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		tmpl := template.NewProjectTemplate(initMongoURL)

		configPath := tmpl.ConfigFileName()
		if _, err := os.Stat(configPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
		}
		if err := os.WriteFile(configPath, []byte(tmpl.GetSeedConfig()), 0644); err != nil {
			return fmt.Errorf("failed to create file %s: %w", configPath, err)
		}

		added, err := handleEnvFile(".env", tmpl.URLEnv, tmpl.GetEnvTemplate())
		if err != nil {
			return fmt.Errorf("failed to handle .env file: %w", err)
		}

		color.Green("✅ Created %s", configPath)
		if added {
			color.Green("✅ Added %s to .env", tmpl.URLEnv)
		} else {
			color.Yellow("ℹ️  .env already defines %s, left unchanged", tmpl.URLEnv)
		}
		fmt.Println()
		color.Cyan("🌱 Run 'storeseed seed' to populate the database")
		return nil
	},
}

// handleEnvFile appends envLine to path unless key is already defined there.
func handleEnvFile(path, key, envLine string) (bool, error) {
	existingContent, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, os.WriteFile(path, []byte(envLine), 0644)
		}
		return false, err
	}

	existing, err := godotenv.Unmarshal(string(existingContent))
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if _, defined := existing[key]; defined {
		return false, nil
	}

	existingStr := string(existingContent)
	if len(existingStr) > 0 && !strings.HasSuffix(existingStr, "\n") {
		existingStr += "\n"
	}
	existingStr += "\n# Added by storeseed\n" + envLine

	return true, os.WriteFile(path, []byte(existingStr), 0644)
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initMongoURL, "url", "", "Connection string written to .env (default mongodb://localhost:27017/ecommerce)")
}
