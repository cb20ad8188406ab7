package logger

import (
	"fmt" // Plain formatting when a stream is not colored
	"io"  // Writers the levels print to
	"os"  // Process stdout/stderr

	"github.com/fatih/color"     // Colored console output
	"github.com/mattn/go-isatty" // Terminal detection for automatic color disabling
)

// Stdout and Stderr are the destinations for log output.
// Info goes to Stdout; Warn, Alert, Error and Debug go to Stderr so that diagnostics
// never mix with the regular output of a command. Tests swap these out.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Colors used by the log levels.
// Green is used for normal progress, magenta for warnings, red for errors,
// bright red for things the user has to act on, and cyan for debug output and paths.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	alertColor = color.New(color.FgHiRed)
	debugColor = color.New(color.FgCyan)
	pathColor  = color.New(color.FgCyan)
)

// stdoutColored and stderrColored are decided separately in Init, so that
// redirecting one stream to a file does not leak escape codes into it while
// the other stream is still a terminal.
var (
	stdoutColored = true
	stderrColored = true
)

// debugEnabled controls whether Debug prints anything at all.
var debugEnabled bool

// isTerminal reports whether f is attached to a terminal (including Cygwin/MSYS ptys).
// It is a variable so tests can pretend either stream is a terminal.
var isTerminal = func(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printf writes to w, wrapped in c only when the stream is colored.
func printf(w io.Writer, colored bool, c *color.Color, format string, a ...any) {
	if !colored {
		_, _ = fmt.Fprintf(w, format, a...)
		return
	}
	_, _ = c.Fprintf(w, format, a...)
}

// Info logs informational messages in green on Stdout.
func Info(format string, a ...any) {
	printf(Stdout, stdoutColored, infoColor, format, a...)
}

// Warn logs warnings in bright magenta on Stderr.
func Warn(format string, a ...any) {
	printf(Stderr, stderrColored, warnColor, format, a...)
}

// Alert logs messages the user must act on in bright red on Stderr.
func Alert(format string, a ...any) {
	printf(Stderr, stderrColored, alertColor, format, a...)
}

// Error logs errors in red on Stderr.
func Error(format string, a ...any) {
	printf(Stderr, stderrColored, errorColor, format, a...)
}

// Debug logs debug messages in cyan on Stderr when debug logging is enabled,
// otherwise it is a no-op.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	printf(Stderr, stderrColored, debugColor, format, a...)
}

// Path highlights a filesystem path or address inside an Info message.
// It follows the coloring of Stdout, the only stream Info writes to.
func Path(v any) string {
	if !stdoutColored {
		return fmt.Sprint(v)
	}
	return pathColor.Sprint(v)
}

// Init configures the logger.
// Parameters:
// - enableDebug: turn Debug messages on or off.
// - noColor: force plain output on both streams.
// Without noColor, each stream keeps its color only while it is a terminal.
func Init(enableDebug, noColor bool) {
	debugEnabled = enableDebug
	stdoutColored = !noColor && isTerminal(os.Stdout)
	stderrColored = !noColor && isTerminal(os.Stderr)
}
