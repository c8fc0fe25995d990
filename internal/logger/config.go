package logger

import (
	"log/slog"
	"strings"
)

// Config selects the slog handler and the attributes stamped on every record
type Config struct {
	Level     slog.Level
	JSON      bool
	AddSource bool

	ServiceName string
	Version     string
	Environment string
}

// NewConfig builds a Config from the string settings the service is deployed with.
// Unknown levels fall back to info and unknown formats to text.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       ParseLevel(level),
		JSON:        strings.EqualFold(strings.TrimSpace(format), LogFormatJSON),
		AddSource:   addSource,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
	}
}

// ParseLevel accepts slog level names, with offsets such as "warn+2", plus the
// "warning" alias operators tend to type.
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, LogLevelWarningAlias) {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// baseArgs returns the service identity attributes, skipping empty ones
func (c Config) baseArgs() []any {
	args := make([]any, 0, 3)
	for _, a := range []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	} {
		if a.Value.String() != "" {
			args = append(args, a)
		}
	}
	return args
}
