package lazylog

import (
	"strconv"
	"strings"

	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Environment variables read by InitFromEnv.
const (
	// EnvMaxLevel sets the runtime threshold. Accepts level names ("info",
	// "INF"), "off", or the digits 0..5.
	EnvMaxLevel = "LAZYLOG_MAX_LEVEL"
	// EnvBufferSize sets the queue capacity in bytes. Rounded up to a
	// power of two; only honoured on the first initialization.
	EnvBufferSize = "LAZYLOG_BUFFER_SIZE"
)

// InitFromEnv initializes the global logger, overlaying opts with the
// LAZYLOG_* environment variables. Unset or unparsable variables leave the
// corresponding option untouched. A threshold of "trace" maps to the Level
// zero value and therefore selects DefaultMaxLevel; call SetMaxLevel to
// force TraceLevel in builds whose default is higher.
func InitFromEnv(opts Options) {
	k := koanf.New(".")
	_ = k.Load(envprovider.Provider("LAZYLOG_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil)

	if v := k.String("lazylog.max.level"); v != "" {
		if level, ok := ParseLevel(v); ok {
			opts.MaxLevel = level
		}
	}
	if v := k.String("lazylog.buffer.size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Capacity = n
		}
	}
	InitWithOptions(opts)
}
