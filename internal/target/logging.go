package target

import (
	"fmt"

	"github.com/specialistvlad/targetconf/internal/option"
)

// LogLevel is the runtime log level compiled into the program.
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarn
	LogInfo
	LogLog
	LogDebug
)

// LogLevels enumerates the legal logging values.
var LogLevels = option.New("logging", LogInfo,
	option.Variant[LogLevel]{Value: LogError, Ident: "ERROR"},
	option.Variant[LogLevel]{Value: LogWarn, Ident: "WARN"},
	option.Variant[LogLevel]{Value: LogInfo, Ident: "INFO"},
	option.Variant[LogLevel]{Value: LogLog, Ident: "LOG"},
	option.Variant[LogLevel]{Value: LogDebug, Ident: "DEBUG"},
)

func (l LogLevel) String() string {
	if !LogLevels.Contains(l) {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return LogLevels.CanonicalName(l)
}

// LoggingProperty sets the runtime log level.
var LoggingProperty = &OptionProperty[LogLevel]{
	name:        "logging",
	description: "Log level of the runtime.",
	typ:         LogLevels,
}
