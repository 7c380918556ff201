package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/photox/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a config.toml from the embedded template and verifies it parses.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		configPath = r.configPath
	}
	if configPath == "" {
		return fmt.Errorf("%w: --config", shared.ErrMissingArgument)
	}

	r.logger.Info("creating config file from template", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("created config does not parse: %w", err)
	}
	r.config = config

	r.logger.Info("setup complete", "path", configPath, "manifest", config.Gallery.Manifest)
	return r.writePlain("✓ Config written to %s\n", configPath)
}
