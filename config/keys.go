package config

import (
	"os"

	isatty "github.com/mattn/go-isatty"

	"github.com/depscan/depscan-cli/cmd/depscan/flags"
)

/**** Global configuration keys ****/

var filename string

// Interactive is true if the user desires interactive output.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && !boolFlag(flags.NoAnsiFlagName)
}

// Debug is true if the user has requested debug-level logging.
func Debug() bool {
	return boolFlag(flags.DebugFlagName)
}

// Filepath is the configuration file path.
func Filepath() string {
	return filename
}

/**** API configuration keys ****/

// APIKey is the user's scanning API key.
func APIKey() string {
	if key := stringFlag(flags.APIKeyFlagName); key != "" {
		return key
	}
	if key := os.Getenv("DEPSCAN_API_KEY"); key != "" {
		return key
	}
	return file.APIKey
}

// Endpoint is the scanning server's base URL.
func Endpoint() string {
	if endpoint := stringFlag(flags.EndpointFlagName); endpoint != "" {
		return endpoint
	}
	if file.Endpoint != "" {
		return file.Endpoint
	}
	return "https://app.depscan.io"
}

// Project is the project's display name, defaulting to the VCS remote
// "origin".
func Project() string {
	if project := stringFlag(flags.ProjectFlagName); project != "" {
		return project
	}
	if file.Project != "" {
		return file.Project
	}
	if repo != nil {
		return repo.Project()
	}
	return ""
}

// Revision is the project's current VCS revision hash, or "".
func Revision() string {
	if revision := stringFlag(flags.RevisionFlagName); revision != "" {
		return revision
	}
	if repo != nil {
		head, err := repo.Head()
		if err == nil {
			return head.RevisionID
		}
	}
	return ""
}

/**** Cache configuration keys ****/

// CacheDir is the scan cache root, or "" for the per-user default.
func CacheDir() string {
	if dir := stringFlag(flags.CacheDirFlagName); dir != "" {
		return dir
	}
	return file.CacheDir
}

/**** Provider configuration keys ****/

// ProviderType names the manifest structure provider. Maven is the only
// provider today, so it is also the default.
func ProviderType() string {
	if file.Provider.Type != "" {
		return file.Provider.Type
	}
	return "maven"
}

// ProviderOptions is the free-form provider option map.
func ProviderOptions() map[string]interface{} {
	return file.Provider.Options
}

func stringFlag(name string) string {
	if ctx == nil {
		return ""
	}
	if v := ctx.String(name); v != "" {
		return v
	}
	return ctx.GlobalString(name)
}

func boolFlag(name string) bool {
	if ctx == nil {
		return false
	}
	return ctx.Bool(name) || ctx.GlobalBool(name)
}
