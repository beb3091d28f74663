package sphere

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package logger. It discards everything until SetupLogging is called.
var Logger = zerolog.Nop()

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetupLogging writes colored console logs to console and, when file is not nil,
// uncolored ones to file. Frames own stdout, so console should be stderr.
func SetupLogging(console, file io.Writer, level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339},
	}
	if file != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true})
	}
	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(level)).
		With().Timestamp().Str("component", "hollowsphere").Logger()
	Logger.Debug().Str("loglevel", Logger.GetLevel().String()).Msg("Logging set up")
}

func DebugLog(format string, args ...interface{}) {
	Logger.Debug().Msgf(format, args...)
}
