package display

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/apex/log"
)

var (
	file    *os.File
	useANSI bool
	level   = log.InfoLevel
)

// SetInteractive turns colors and ANSI control characters on or off.
func SetInteractive(interactive bool) {
	// Disable Unicode and ANSI control characters on Windows.
	if runtime.GOOS == "windows" {
		return
	}
	useANSI = interactive
}

// SetDebug turns debug logging to STDERR on or off.
//
// The log file always receives debug-level entries regardless.
func SetDebug(debug bool) {
	if debug {
		level = log.DebugLevel
	} else {
		level = log.InfoLevel
	}
}

// File returns the debug log file name.
func File() string {
	if file == nil {
		return ""
	}
	return file.Name()
}

// Handler handles log entries. It multiplexes them into two outputs,
// writing human-readable messages to STDERR and machine-readable entries to
// a log file.
func Handler(entry *log.Entry) error {
	if entry.Level >= level {
		fmt.Fprintf(os.Stderr, "%s %s\n", entry.Level, entry.Message)
	}

	if file == nil {
		return nil
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, byte('\n'))
	if _, err := file.Write(data); err != nil {
		return err
	}
	return file.Sync()
}
