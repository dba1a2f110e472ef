package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"akeneo/endpoints/internal/config"
	"akeneo/endpoints/internal/container"
	"akeneo/endpoints/internal/domain"
)

var ErrInvalidArgument = errors.New("invalid argument")

// NewRootCmd returns the endpoints command tree.
func NewRootCmd(name string) *cobra.Command {
	var app *container.Container

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Resolve PIM REST API endpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", ".", "Directory containing config.yaml (defaults to the working directory)")
	cmd.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		cfg, err := loadConfig(flags)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if level, _ := flags.GetString("log-level"); level != "" {
			cfg.Log.Level = level
		}

		app, err = container.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		return nil
	}

	appFn := func() *container.Container { return app }

	cmd.AddCommand(NewTypeCmd(appFn))
	cmd.AddCommand(NewInstanceCmd(appFn))
	cmd.AddCommand(NewFormatCmd(appFn))
	cmd.AddCommand(NewPaginateCmd(appFn))
	cmd.AddCommand(NewRequestCmd(appFn))
	cmd.AddCommand(NewListCmd(appFn))

	return cmd
}

// loadConfig reads --config when given, else config.yaml in the working directory.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	if !flags.Changed("config") {
		return config.Load()
	}

	dir, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return config.LoadFrom(dir)
}

func parseResourceType(arg string) (domain.ResourceType, error) {
	resourceType, err := domain.ParseResourceType(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return resourceType, nil
}
