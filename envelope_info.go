//go:build lazylog_min_info

package lazylog

// CompileMinLevel is the build-time severity envelope selected by the
// lazylog_min_info build tag.
const CompileMinLevel Level = InfoLevel
