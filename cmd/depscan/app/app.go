// Package app assembles the depscan CLI application.
package app

import (
	"github.com/urfave/cli"

	"github.com/depscan/depscan-cli/cmd/depscan/cmd/cachecmd"
	"github.com/depscan/depscan-cli/cmd/depscan/cmd/scan"
	"github.com/depscan/depscan-cli/cmd/depscan/flags"
	"github.com/depscan/depscan-cli/cmd/depscan/version"
)

// New builds the CLI application. Running with no command is equivalent to
// `depscan scan`.
func New() *cli.App {
	return &cli.App{
		Name:                 "depscan",
		Usage:                "Scan multi-module projects for vulnerable dependencies",
		Version:              version.String(),
		Action:               scan.Run,
		EnableBashCompletion: true,
		Flags: flags.Combine(
			scan.Cmd.Flags,
			flags.WithGlobalFlags(nil),
		),
		Commands: []cli.Command{
			scan.Cmd,
			cachecmd.Cmd,
		},
	}
}
