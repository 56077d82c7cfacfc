//go:build lazylog_release

package lazylog

// DefaultMaxLevel is the runtime threshold Init applies when Options leaves
// MaxLevel at its zero value, raised to InfoLevel by the lazylog_release
// build tag.
const DefaultMaxLevel Level = InfoLevel
