package canvas

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Scripts that draw a figure and exit rarely want to thread error
// returns through every call; SetExitOnError switches all canvases to
// printing the failing user call site and exiting instead. The
// default is the usual explicit error return.

var exitOnError = false

// SetExitOnError toggles the exit-on-error reporting mode for the
// whole process.
func SetExitOnError(on bool) { exitOnError = on }

// exit is swapped out by tests.
var exit = os.Exit

func (c *Canvas) fail(err error) error {
	if err == nil {
		return nil
	}
	if exitOnError {
		reportFatal(err)
	}
	return err
}

// reportFatal prints the error with the first stack frame outside this
// library, which is the drawing call in the user's script.
func reportFatal(err error) {
	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	site := "unknown call site"
	frames := runtime.CallersFrames(pc[:n])
	for {
		f, more := frames.Next()
		if f.File != "" && !strings.Contains(f.File, "drawlib") {
			site = fmt.Sprintf("%s:%d", f.File, f.Line)
			break
		}
		if !more {
			break
		}
	}
	fmt.Fprintf(os.Stderr, "drawlib: %v\n  at %s\n", err, site)
	exit(1)
}
