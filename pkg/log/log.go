package log

import (
	"fmt"
	"io"
	stdlog "log"
)

// F is the debug log function, a no-op until Set enables verbose mode.
var F = func(string, ...interface{}) {}

// Set turns verbose logging on or off and sets the output flags.
func Set(verbose bool, flag int) {
	if verbose {
		F = Debugf
	} else {
		F = func(string, ...interface{}) {}
	}
	stdlog.SetFlags(flag)
}

// SetOutput sets the destination of the logger.
func SetOutput(w io.Writer) {
	stdlog.SetOutput(w)
}

// Debugf prints debug log.
func Debugf(f string, v ...interface{}) {
	stdlog.Output(2, fmt.Sprintf(f, v...))
}

// Printf prints log.
func Printf(f string, v ...interface{}) {
	stdlog.Printf(f, v...)
}

// Fatal log and exit.
func Fatal(v ...interface{}) {
	stdlog.Fatal(v...)
}

// Fatalf log and exit.
func Fatalf(f string, v ...interface{}) {
	stdlog.Fatalf(f, v...)
}
