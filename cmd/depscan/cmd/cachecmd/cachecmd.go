// Package cachecmd implements the `depscan cache` command.
package cachecmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/depscan/depscan-cli/cmd/depscan/cmdutil"
	"github.com/depscan/depscan-cli/cmd/depscan/flags"
	"github.com/depscan/depscan-cli/cmd/depscan/setup"
)

const AllFlagName = "all"

var Cmd = cli.Command{
	Name:  "cache",
	Usage: "Inspect and clean the scan result cache",
	Subcommands: []cli.Command{
		{
			Name:   "clean",
			Usage:  "Remove expired cache entries",
			Action: runClean,
			Flags: flags.WithGlobalFlags(flags.WithCacheFlags([]cli.Flag{
				cli.BoolFlag{Name: AllFlagName, Usage: "remove every cache entry, not just expired ones"},
			})),
		},
		{
			Name:   "dir",
			Usage:  "Print the cache directory",
			Action: runDir,
			Flags:  flags.WithGlobalFlags(flags.WithCacheFlags(nil)),
		},
	},
}

func runClean(ctx *cli.Context) error {
	err := setup.SetContext(ctx, false)
	if err != nil {
		return err
	}

	store, err := cmdutil.OpenCache()
	if err != nil {
		return err
	}

	removed, err := store.Clean(ctx.Bool(AllFlagName))
	if err != nil {
		return err
	}
	log.Infof("removed %d cache entries", removed)
	return nil
}

func runDir(ctx *cli.Context) error {
	err := setup.SetContext(ctx, false)
	if err != nil {
		return err
	}

	store, err := cmdutil.OpenCache()
	if err != nil {
		return err
	}
	fmt.Println(store.Dir)
	return nil
}
