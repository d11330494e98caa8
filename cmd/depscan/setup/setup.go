// Package setup implements initialization for all application packages.
package setup

import (
	"github.com/urfave/cli"

	"github.com/depscan/depscan-cli/api"
	"github.com/depscan/depscan-cli/api/vulnscan"
	"github.com/depscan/depscan-cli/cmd/depscan/display"
	"github.com/depscan/depscan-cli/cmd/depscan/version"
	"github.com/depscan/depscan-cli/config"
)

// SetContext initializes all application-level packages.
func SetContext(ctx *cli.Context, requiresAPIKey bool) error {
	// Set up configuration.
	err := config.SetContext(ctx)
	if err != nil {
		return err
	}

	// Set up logging.
	display.SetInteractive(config.Interactive())
	display.SetDebug(config.Debug())

	// Set up API.
	ua := "depscan-cli"
	if v := version.ShortString(); v != "" {
		ua += "/" + v
	}
	api.SetUserAgent(ua)

	err = vulnscan.SetEndpoint(config.Endpoint())
	if err != nil {
		return err
	}

	if requiresAPIKey {
		if err := vulnscan.SetAPIKey(config.APIKey()); err != nil {
			return err
		}
	}

	return nil
}
