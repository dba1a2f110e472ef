package container

import (
	"fmt"

	"akeneo/endpoints/internal/client"
	"akeneo/endpoints/internal/config"
	"akeneo/endpoints/internal/endpoint"
	"akeneo/endpoints/internal/service"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Resolver *endpoint.Resolver
	Requests client.RequestBuilder

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	if err := configureLogging(cfg.Log); err != nil {
		return nil, err
	}

	container := &Container{
		Config: cfg,
	}

	resolver := endpoint.NewResolver(
		cfg.Akeneo.Endpoints.ResolverEndpoints(),
		endpoint.WithLogger(log.WithField("component", "endpoint_resolver")),
	)
	container.Resolver = resolver

	requests := client.NewRequestBuilder(cfg.Akeneo, resolver)
	container.Requests = requests

	container.Service = service.NewService(resolver, requests)

	log.Debugf("Container ready for %s", cfg.Akeneo.BaseURL)
	return container, nil
}

func configureLogging(cfg config.LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
