package lazylog

import "strings"

// Level defines the severity of a log record.
type Level int8

const (
	// TraceLevel defines trace log level, the lowest severity.
	TraceLevel Level = iota
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// OffLevel sits strictly above ErrorLevel and disables all emission when
	// used as a threshold. It is not a valid record severity.
	OffLevel
)

// ParseLevel converts a textual level into a Level value. It accepts long
// names ("trace", "debug", "info", "warn", "warning", "error", "off",
// "disabled"), the canonical short names ("TRC", "DBG", "INF", "WRN", "ERR",
// "OFF"), and the numeric equivalents "0" through "5", all case
// insensitively.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace", "trc", "0":
		return TraceLevel, true
	case "debug", "dbg", "1":
		return DebugLevel, true
	case "info", "inf", "2":
		return InfoLevel, true
	case "warn", "warning", "wrn", "3":
		return WarnLevel, true
	case "error", "err", "4":
		return ErrorLevel, true
	case "off", "disabled", "disable", "5":
		return OffLevel, true
	default:
		return InfoLevel, false
	}
}

// LevelString returns the long lowercase name of a Level.
func LevelString(level Level) string {
	switch level {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case OffLevel:
		return "off"
	default:
		return "info"
	}
}

// Short returns the stable three-letter display name of a Level (TRC, DBG,
// INF, WRN, ERR, OFF).
func (l Level) Short() string {
	switch l {
	case TraceLevel:
		return "TRC"
	case DebugLevel:
		return "DBG"
	case InfoLevel:
		return "INF"
	case WarnLevel:
		return "WRN"
	case ErrorLevel:
		return "ERR"
	case OffLevel:
		return "OFF"
	default:
		return "INF"
	}
}

// String implements fmt.Stringer using the short display name.
func (l Level) String() string {
	return l.Short()
}
