//go:build lazylog_min_warn

package lazylog

// CompileMinLevel is the build-time severity envelope selected by the
// lazylog_min_warn build tag.
const CompileMinLevel Level = WarnLevel
