package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedConfigIsValidJSON(t *testing.T) {
	tmpl := NewProjectTemplate("")

	var parsed struct {
		Database struct {
			Provider string `json:"provider"`
			URLEnv   string `json:"url_env"`
		} `json:"database"`
		Seed map[string]int `json:"seed"`
	}
	require.NoError(t, json.Unmarshal([]byte(tmpl.GetSeedConfig()), &parsed))

	assert.Equal(t, "mongodb", parsed.Database.Provider)
	assert.Equal(t, "MONGO_URL", parsed.Database.URLEnv)
	assert.Equal(t, 20, parsed.Seed["categories"])
	assert.Equal(t, 10000, parsed.Seed["products"])
	assert.Equal(t, "storeseed.config.json", tmpl.ConfigFileName())
}

func TestEnvTemplate(t *testing.T) {
	assert.Equal(t, "MONGO_URL=mongodb://localhost:27017/ecommerce\n", NewProjectTemplate("  ").GetEnvTemplate())
	assert.Equal(t, "MONGO_URL=mongodb://db:27017/shop\n", NewProjectTemplate("mongodb://db:27017/shop").GetEnvTemplate())
}
