package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akeneo/endpoints/internal/config"
	"akeneo/endpoints/internal/endpoint"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/rest/v1", cfg.Akeneo.BaseURL)
	assert.Equal(t, 30, cfg.Akeneo.Timeout)
	assert.Equal(t, 10, cfg.Akeneo.PageLimit)
	assert.False(t, cfg.Akeneo.WithCount)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, endpoint.DefaultEndpoints(), cfg.Akeneo.Endpoints.ResolverEndpoints())
}

func TestLoadFromFile(t *testing.T) {
	dir := writeConfig(t, `
akeneo:
  base_url: https://pim.example.com/api/rest/v1
  page_limit: 100
  with_count: true
  endpoints:
    products: catalog/products
log:
  level: debug
`)

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://pim.example.com/api/rest/v1", cfg.Akeneo.BaseURL)
	assert.Equal(t, 100, cfg.Akeneo.PageLimit)
	assert.True(t, cfg.Akeneo.WithCount)
	assert.Equal(t, "catalog/products", cfg.Akeneo.Endpoints.Products)
	assert.Equal(t, "attributes", cfg.Akeneo.Endpoints.Attributes)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("AKENEO_ENDPOINTS_FAMILIES", "product-families")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "product-families", cfg.Akeneo.Endpoints.Families)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := writeConfig(t, "akeneo: [unclosed")

	_, err := config.LoadFrom(dir)
	require.ErrorIs(t, err, config.ErrLoadConfig)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := map[string]string{
		"empty prefix": `
akeneo:
  endpoints:
    categories: ""
`,
		"slashed prefix": `
akeneo:
  endpoints:
    attributes: /attributes
`,
		"placeholder in prefix": `
akeneo:
  endpoints:
    products: "v{0}"
`,
		"zero page limit": `
akeneo:
  page_limit: 0
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFrom(writeConfig(t, content))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	// The package directory has no config.yaml, so Load falls back to defaults.
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, endpoint.DefaultEndpoints(), cfg.Akeneo.Endpoints.ResolverEndpoints())
}
