//go:build lazylog_min_debug

package lazylog

// CompileMinLevel is the build-time severity envelope selected by the
// lazylog_min_debug build tag.
const CompileMinLevel Level = DebugLevel
