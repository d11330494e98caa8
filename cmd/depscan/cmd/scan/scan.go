// Package scan implements the `depscan scan` command.
package scan

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/depscan/depscan-cli/cmd/depscan/cmdutil"
	"github.com/depscan/depscan-cli/cmd/depscan/display"
	"github.com/depscan/depscan-cli/cmd/depscan/flags"
	"github.com/depscan/depscan-cli/cmd/depscan/setup"
	"github.com/depscan/depscan-cli/config"
	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/pipeline"
)

const (
	ForceFlagName      = "force"
	ShowOutputFlagName = "output"
)

var Cmd = cli.Command{
	Name:      "scan",
	Usage:     "Discover project modules and scan them for vulnerable dependencies",
	Action:    Run,
	ArgsUsage: "DIR",
	Flags: flags.WithGlobalFlags(flags.WithAPIFlags(flags.WithCacheFlags([]cli.Flag{
		cli.BoolFlag{Name: "f, " + ForceFlagName, Usage: "bypass the scan cache and re-scan every unit"},
		cli.BoolFlag{Name: "o, " + ShowOutputFlagName, Usage: "print the full report as JSON to stdout"},
	}))),
}

var _ cli.ActionFunc = Run

// Run executes one full pipeline run over the project directory.
func Run(ctx *cli.Context) error {
	err := setup.SetContext(ctx, true)
	if err != nil {
		return err
	}

	dir := ctx.Args().First()
	if dir == "" {
		dir = "."
	}

	provider, err := cmdutil.NewProvider()
	if err != nil {
		return err
	}
	store, err := cmdutil.OpenCache()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"project":  config.Project(),
		"revision": config.Revision(),
		"config":   config.Filepath(),
	}).Debug("scanning project")

	runner := pipeline.NewRunner(dir, provider, store, observer)
	reports, err := runner.Run(context.Background(), ctx.Bool(ForceFlagName))
	display.ClearProgress()
	if err != nil {
		return err
	}

	if ctx.Bool(ShowOutputFlagName) {
		_, err := display.JSON(reports)
		return err
	}

	display.Summary(reports)

	for _, report := range reports {
		if report.Status == pipeline.StatusFailed {
			return errors.Errorf("unit %q failed: %s", report.Name, report.Error)
		}
	}
	return nil
}

// observer streams pipeline lifecycle events to the terminal.
func observer(e pipeline.Event) {
	switch e.Type {
	case pipeline.EventRunInitialized:
		log.Debugf("scanning %d units", len(e.Reports))
	case pipeline.EventUnitRunning:
		display.InProgress(fmt.Sprintf("Scanning %s...", e.Unit.Name))
	case pipeline.EventUnitSucceeded:
		display.ClearProgress()
		log.Infof("scanned %s: %d findings", e.Unit.Name, e.Unit.TotalFindings)
	case pipeline.EventUnitFailed:
		display.ClearProgress()
		log.Warnf("unit %s failed: %s", e.Unit.Name, e.Unit.Error)
	case pipeline.EventRunCompleted:
		display.ClearProgress()
	case pipeline.EventRunFailed:
		display.ClearProgress()
		log.Errorf("run failed: %s", e.Err.Error())
	}
}
