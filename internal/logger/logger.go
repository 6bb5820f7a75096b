package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "techfit-backend"

// Setup builds the application logger and sets the global level.
// format "pretty" wraps stdout in a console writer for local development;
// anything else emits raw JSON for log shippers. Unrecognized levels fall
// back to info so a typo in LOG_LEVEL never silences the service.
func Setup(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stdout
	if format == "pretty" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
