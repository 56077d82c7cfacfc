//go:build lazylog_min_error

package lazylog

// CompileMinLevel is the build-time severity envelope selected by the
// lazylog_min_error build tag.
const CompileMinLevel Level = ErrorLevel
