//go:build !lazylog_min_debug && !lazylog_min_info && !lazylog_min_warn && !lazylog_min_error && !lazylog_min_off

package lazylog

// CompileMinLevel is the build-time severity envelope. Call sites below it
// compile to a constant-false guard and are removed by the compiler. Select
// a higher envelope with one of the build tags lazylog_min_debug,
// lazylog_min_info, lazylog_min_warn, lazylog_min_error or lazylog_min_off.
const CompileMinLevel Level = TraceLevel
