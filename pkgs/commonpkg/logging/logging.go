package logging

import (
	"io"
	"strings"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// InitLogger sets up the standard logger: colored text on stderr plus a
// plain copy of every entry in logFile. dbg wins over level.
func InitLogger(dbg bool, level string, logFile io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	switch {
	case dbg:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(ParseLevel(level))
	}

	if logFile != nil {
		log.AddHook(lfshook.NewHook(logFile, &log.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		}))
	}
}

// ParseLevel falls back to info for empty or unknown names
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

////////////////////////////////////////////////////////////////////////////////

// NewClientLogger returns a dedicated logger for the HTTP client's own output
func NewClientLogger(out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetLevel(log.InfoLevel)
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
	})
	return logger
}
