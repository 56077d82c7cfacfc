//go:build !lazylog_release

package lazylog

// DefaultMaxLevel is the runtime threshold Init applies when Options leaves
// MaxLevel at its zero value. Normal builds admit everything; building with
// the lazylog_release tag raises the default to InfoLevel.
const DefaultMaxLevel Level = TraceLevel
