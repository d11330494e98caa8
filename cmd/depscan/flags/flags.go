// Package flags defines the flag groups shared between commands.
package flags

import (
	"fmt"

	"github.com/urfave/cli"
)

func abbr(fullname string) string {
	return fmt.Sprintf("%c, %s", fullname[0], fullname)
}

// Combine merges flag groups, deduplicating by flag name.
func Combine(sets ...[]cli.Flag) []cli.Flag {
	var combined []cli.Flag
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, f := range set {
			if seen[f.GetName()] {
				continue
			}
			seen[f.GetName()] = true
			combined = append(combined, f)
		}
	}
	return combined
}

// WithGlobalFlags appends the flags every command accepts.
func WithGlobalFlags(f []cli.Flag) []cli.Flag {
	return append(f, Global...)
}

var (
	Global         = []cli.Flag{Config, NoAnsi, Debug}
	ConfigFlagName = "config"
	Config         = cli.StringFlag{Name: abbr(ConfigFlagName), Usage: "path to config file (default: '.depscan.{yml,yaml}')"}
	NoAnsiFlagName = "no-ansi"
	NoAnsi         = cli.BoolFlag{Name: NoAnsiFlagName, Usage: "do not use interactive mode (ANSI codes)"}
	DebugFlagName  = "debug"
	Debug          = cli.BoolFlag{Name: DebugFlagName, Usage: "print debug information to stderr"}
)

// WithAPIFlags appends the flags for commands that reach the scanning API.
func WithAPIFlags(f []cli.Flag) []cli.Flag {
	return append(f, API...)
}

var (
	API              = []cli.Flag{Endpoint, APIKeyFlag, Project, Revision}
	EndpointFlagName = "endpoint"
	Endpoint         = cli.StringFlag{Name: abbr(EndpointFlagName), Usage: "the scanning server endpoint (default: 'https://app.depscan.io')"}
	APIKeyFlagName   = "apikey"
	APIKeyFlag       = cli.StringFlag{Name: APIKeyFlagName, Usage: "the scanning API key (default: $DEPSCAN_API_KEY)"}
	ProjectFlagName  = "project"
	Project          = cli.StringFlag{Name: abbr(ProjectFlagName), Usage: "this project's name (default: VCS remote 'origin')"}
	RevisionFlagName = "revision"
	Revision         = cli.StringFlag{Name: abbr(RevisionFlagName), Usage: "this project's revision hash (default: VCS hash at HEAD)"}
)

// WithCacheFlags appends the flags for commands that touch the scan cache.
func WithCacheFlags(f []cli.Flag) []cli.Flag {
	return append(f, Cache...)
}

var (
	Cache            = []cli.Flag{CacheDir}
	CacheDirFlagName = "cache-dir"
	CacheDir         = cli.StringFlag{Name: CacheDirFlagName, Usage: "scan cache directory (default: '~/.depscan/cache')"}
)
