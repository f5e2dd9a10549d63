// Package log is a small leveled logger for debug output on stderr.
package log

import (
	stdlog "log"
	"os"
	"strings"
)

// Level is a log severity.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var (
	current = Warn
	logger  = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
)

// ParseLevel parses a level name; unknown names map to Warn.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn", "warning", "":
		return Warn
	case "err", "error":
		return Error
	default:
		return Warn
	}
}

// SetLevel sets the minimum level that gets emitted.
func SetLevel(l Level) { current = l }

func Debugf(format string, v ...any) {
	if current <= Debug {
		logger.Printf("[DEBUG] "+format, v...)
	}
}

func Infof(format string, v ...any) {
	if current <= Info {
		logger.Printf("[INFO] "+format, v...)
	}
}

func Warnf(format string, v ...any) {
	if current <= Warn {
		logger.Printf("[WARN] "+format, v...)
	}
}

func Errorf(format string, v ...any) {
	if current <= Error {
		logger.Printf("[ERROR] "+format, v...)
	}
}
