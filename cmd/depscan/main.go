package main

import (
	"os"

	"github.com/apex/log"

	"github.com/depscan/depscan-cli/cmd/depscan/app"
	"github.com/depscan/depscan-cli/cmd/depscan/display"
	"github.com/depscan/depscan-cli/errors"
)

func main() {
	err := app.New().Run(os.Args)
	display.ClearProgress()
	if err == nil {
		return
	}

	// Errors that commands did not classify get the generic wrapper, which
	// renders the bug-report footer.
	if _, ok := err.(*errors.Error); !ok {
		err = errors.UnknownError(err, "depscan encountered an unexpected error")
	}
	log.Error(err.Error())
	if f := display.File(); f != "" {
		log.Infof("the full debug log is at %s", f)
	}
	os.Exit(1)
}
