package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEnvFileCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	added, err := handleEnvFile(path, "MONGO_URL", "MONGO_URL=mongodb://localhost:27017/shop\n")
	require.NoError(t, err)
	assert.True(t, added)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "MONGO_URL=mongodb://localhost:27017/shop\n", string(content))
}

func TestHandleEnvFileAppendsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8080"), 0644))

	added, err := handleEnvFile(path, "MONGO_URL", "MONGO_URL=mongodb://localhost:27017/shop\n")
	require.NoError(t, err)
	assert.True(t, added)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PORT=8080\n\n# Added by storeseed\nMONGO_URL=mongodb://localhost:27017/shop\n", string(content))
}

func TestHandleEnvFileKeepsExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	original := "MONGO_URL=mongodb://prod:27017/shop\nPORT=8080\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	added, err := handleEnvFile(path, "MONGO_URL", "MONGO_URL=mongodb://localhost:27017/shop\n")
	require.NoError(t, err)
	assert.False(t, added)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}
