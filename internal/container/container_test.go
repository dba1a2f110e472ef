package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akeneo/endpoints/internal/config"
	"akeneo/endpoints/internal/container"
	"akeneo/endpoints/internal/domain"
)

func TestNew(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)

	app, err := container.New(cfg)
	require.NoError(t, err)
	require.NotNil(t, app.Resolver)
	require.NotNil(t, app.Requests)
	require.NotNil(t, app.Service)

	got, err := app.Resolver.ForResourceType(domain.ResourceTypeProduct, "")
	require.NoError(t, err)
	assert.Equal(t, "products", got)
}

func TestNewInvalidLogLevel(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	cfg.Log.Level = "loud"

	_, err = container.New(cfg)
	require.Error(t, err)
}
