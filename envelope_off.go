//go:build lazylog_min_off

package lazylog

// CompileMinLevel is the build-time severity envelope selected by the
// lazylog_min_off build tag. It removes every call site from the build.
const CompileMinLevel Level = OffLevel
