package logger

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Log format values
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

const DefaultServiceName = "harvest"

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "console"
	ServiceName string
	Version     string
	Environment string // "dev", "prod", "test"
}

// DefaultConfig keeps the terminal quiet unless something goes wrong.
func DefaultConfig() Config {
	return Config{
		Level:       "warn",
		Format:      FormatConsole,
		ServiceName: DefaultServiceName,
		Version:     "dev",
		Environment: "dev",
	}
}

func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      FormatConsole,
		ServiceName: DefaultServiceName,
		Version:     "dev",
		Environment: "dev",
	}
}

func ProductionConfig() Config {
	return Config{
		Level:       "info",
		Format:      FormatJSON,
		ServiceName: DefaultServiceName,
		Version:     "1.0.0",
		Environment: "prod",
	}
}

// LogLevel converts the string level, defaulting to info.
func (c Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// New builds a logger writing to w, tagged with the service attributes and a
// fresh session id.
func New(c Config, w io.Writer) zerolog.Logger {
	if !c.IsJSON() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(w).
		Level(c.LogLevel()).
		With().
		Timestamp().
		Str("service", c.ServiceName).
		Str("version", c.Version).
		Str("environment", c.Environment).
		Str("session_id", uuid.NewString()).
		Logger()
}
