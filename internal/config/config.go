package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	DefaultConfigName = "storeseed.config"
	DefaultURLEnv     = "MONGO_URL"
)

type Config struct {
	Database Database `json:"database" yaml:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" yaml:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" yaml:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" yaml:"url_env" mapstructure:"url_env"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"` // overrides the database in the URL
}

type Seed struct {
	Categories int    `json:"categories" yaml:"categories" mapstructure:"categories"`
	Users      int    `json:"users" yaml:"users" mapstructure:"users"`
	Products   int    `json:"products" yaml:"products" mapstructure:"products"`
	Orders     int    `json:"orders" yaml:"orders" mapstructure:"orders"`
	BatchSize  int    `json:"batch_size" yaml:"batch_size" mapstructure:"batch_size"`
	RandomSeed uint64 `json:"random_seed,omitempty" yaml:"random_seed,omitempty" mapstructure:"random_seed"`
	Password   string `json:"password" yaml:"-" mapstructure:"password"`
	Verify     bool   `json:"verify,omitempty" yaml:"verify,omitempty" mapstructure:"verify"`
}

// envKeys maps config keys to the environment variables the seeding script
// has always read.
var envKeys = map[string]string{
	"seed.categories":  "NUM_CATEGORIES",
	"seed.users":       "NUM_USERS",
	"seed.products":    "NUM_PRODUCTS",
	"seed.orders":      "NUM_ORDERS",
	"seed.batch_size":  "SEED_BATCH_SIZE",
	"seed.random_seed": "SEED_RANDOM_SEED",
	"seed.password":    "SEED_PASSWORD",
	"database.name":    "MONGO_DB_NAME",
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.provider", "mongodb")
	v.SetDefault("database.url_env", DefaultURLEnv)
	v.SetDefault("seed.categories", 20)
	v.SetDefault("seed.users", 1000)
	v.SetDefault("seed.products", 10000)
	v.SetDefault("seed.orders", 1000)
	v.SetDefault("seed.batch_size", 1000)
	v.SetDefault("seed.random_seed", 0)
	v.SetDefault("seed.password", "password123")
	v.SetDefault("seed.verify", false)

	for key, env := range envKeys {
		v.BindEnv(key, env)
	}
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "mongodb"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = DefaultURLEnv
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"mongodb", "mongo"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	counts := []struct {
		name  string
		value int
	}{
		{"categories", c.Seed.Categories},
		{"users", c.Seed.Users},
		{"products", c.Seed.Products},
		{"orders", c.Seed.Orders},
	}
	for _, count := range counts {
		if count.value < 0 {
			return fmt.Errorf("seed.%s cannot be negative", count.name)
		}
	}

	if c.Seed.BatchSize < 1 {
		return fmt.Errorf("seed.batch_size must be at least 1")
	}

	if c.Seed.Users > 0 && c.Seed.Password == "" {
		return fmt.Errorf("seed.password cannot be empty when seeding users")
	}

	return nil
}
