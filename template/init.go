package template

import (
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/storeseed/internal/config"
	"github.com/Lumos-Labs-HQ/storeseed/internal/seeder"
)

const defaultMongoURL = "mongodb://localhost:27017/ecommerce"

type ProjectTemplate struct {
	URLEnv   string
	MongoURL string
}

func NewProjectTemplate(mongoURL string) *ProjectTemplate {
	if strings.TrimSpace(mongoURL) == "" {
		mongoURL = defaultMongoURL
	}
	return &ProjectTemplate{
		URLEnv:   config.DefaultURLEnv,
		MongoURL: mongoURL,
	}
}

func (pt *ProjectTemplate) ConfigFileName() string {
	return config.DefaultConfigName + ".json"
}

func (pt *ProjectTemplate) GetSeedConfig() string {
	return fmt.Sprintf(`{
  "database": {
    "provider": "mongodb",
    "url_env": "%s"
  },
  "seed": {
    "categories": %d,
    "users": %d,
    "products": %d,
    "orders": %d,
    "batch_size": %d
  }
}
`, pt.URLEnv, seeder.DefaultCategories, seeder.DefaultUsers, seeder.DefaultProducts,
		seeder.DefaultOrders, seeder.DefaultBatch)
}

func (pt *ProjectTemplate) GetEnvTemplate() string {
	return fmt.Sprintf("%s=%s\n", pt.URLEnv, pt.MongoURL)
}
