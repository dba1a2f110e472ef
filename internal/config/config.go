package config

import (
	"errors"
	"fmt"
	"strings"

	"akeneo/endpoints/internal/endpoint"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Akeneo AkeneoConfig `mapstructure:"akeneo"`
	Log    LogConfig    `mapstructure:"log"`
}

// AkeneoConfig holds PIM API configuration
type AkeneoConfig struct {
	BaseURL   string          `mapstructure:"base_url"`
	Timeout   int             `mapstructure:"timeout"`
	UserAgent string          `mapstructure:"user_agent"`
	PageLimit int             `mapstructure:"page_limit"`
	WithCount bool            `mapstructure:"with_count"`
	Endpoints EndpointsConfig `mapstructure:"endpoints"`
}

// EndpointsConfig holds the collection path prefix of each resource
type EndpointsConfig struct {
	Products   string `mapstructure:"products"`
	Attributes string `mapstructure:"attributes"`
	Families   string `mapstructure:"families"`
	Categories string `mapstructure:"categories"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from config.yaml in the current directory with
// environment variable overrides
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads configuration from config.yaml in dir. A missing file is
// not an error: the defaults describe a complete configuration.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: error reading config file: %w", ErrLoadConfig, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: unable to decode config: %w", ErrLoadConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the values Load cannot default away
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Akeneo.BaseURL) == "" {
		return fmt.Errorf("%w: akeneo.base_url is empty", ErrInvalidConfig)
	}
	if c.Akeneo.PageLimit < 1 {
		return fmt.Errorf("%w: akeneo.page_limit must be at least 1, got %d", ErrInvalidConfig, c.Akeneo.PageLimit)
	}

	prefixes := map[string]string{
		"products":   c.Akeneo.Endpoints.Products,
		"attributes": c.Akeneo.Endpoints.Attributes,
		"families":   c.Akeneo.Endpoints.Families,
		"categories": c.Akeneo.Endpoints.Categories,
	}
	for key, prefix := range prefixes {
		if strings.TrimSpace(prefix) == "" {
			return fmt.Errorf("%w: akeneo.endpoints.%s is empty", ErrInvalidConfig, key)
		}
		if strings.HasPrefix(prefix, "/") || strings.HasSuffix(prefix, "/") {
			return fmt.Errorf("%w: akeneo.endpoints.%s must not start or end with a slash: %q", ErrInvalidConfig, key, prefix)
		}
		// Braces would be read as placeholders by the resolver's format templates.
		if strings.ContainsAny(prefix, "{}") {
			return fmt.Errorf("%w: akeneo.endpoints.%s must not contain braces: %q", ErrInvalidConfig, key, prefix)
		}
	}

	return nil
}

// ResolverEndpoints converts the configured prefixes for the endpoint resolver
func (c EndpointsConfig) ResolverEndpoints() endpoint.Endpoints {
	return endpoint.Endpoints{
		Products:   c.Products,
		Attributes: c.Attributes,
		Families:   c.Families,
		Categories: c.Categories,
	}
}

func setDefaults(v *viper.Viper) {
	defaults := endpoint.DefaultEndpoints()
	pagination := endpoint.DefaultPagination()

	v.SetDefault("akeneo.base_url", "http://localhost:8080/api/rest/v1")
	v.SetDefault("akeneo.timeout", 30)
	v.SetDefault("akeneo.user_agent", "akeneo-endpoints/1.0")
	v.SetDefault("akeneo.page_limit", pagination.Limit)
	v.SetDefault("akeneo.with_count", pagination.WithCount)

	v.SetDefault("akeneo.endpoints.products", defaults.Products)
	v.SetDefault("akeneo.endpoints.attributes", defaults.Attributes)
	v.SetDefault("akeneo.endpoints.families", defaults.Families)
	v.SetDefault("akeneo.endpoints.categories", defaults.Categories)

	v.SetDefault("log.level", "info")
}
