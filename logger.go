package lazylog

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the queue size Init uses when none is supplied.
const DefaultCapacity = 1 << 20

// logger is the process-wide singleton owning the queue, the active sink
// and formatter, the runtime level threshold and the clock. Exactly one
// producer goroutine and one consumer goroutine may use it; they may be the
// same goroutine.
type logger struct {
	q         *queue
	clock     Clock
	sink      atomic.Value // sinkHolder
	formatter atomic.Value // formatterHolder
	maxLevel  atomic.Int32
}

// atomic.Value requires one consistent concrete type per cell; the holders
// let callers swap between different Sink and Formatter implementations.
type sinkHolder struct{ s Sink }

type formatterHolder struct{ f Formatter }

var (
	globalLogger atomic.Pointer[logger]
	initMu       sync.Mutex
)

// Options configures Init. The zero value selects all defaults.
type Options struct {
	// Capacity is the queue size in bytes, rounded up to a power of two.
	// Zero selects DefaultCapacity. Only the first Init call's capacity
	// takes effect; later calls never resize.
	Capacity int

	// Sink receives formatted lines. Nil selects line-buffered stdout.
	Sink Sink

	// Formatter renders decoded records. Nil selects the default text
	// formatter: "[timestamp] message\n".
	Formatter Formatter

	// Clock supplies hot-path timestamps. Nil selects the monotonic
	// default. Swap clocks only at initialization so timestamps stay
	// comparable.
	Clock Clock

	// MaxLevel is the runtime threshold. The zero value selects
	// DefaultMaxLevel on the first Init and leaves the current threshold
	// untouched on reinitialization; use SetMaxLevel to force TraceLevel
	// explicitly.
	MaxLevel Level
}

// Init establishes the global logger with default options. It is idempotent:
// the first call fixes the queue capacity, later calls are no-ops for the
// capacity but still apply any non-zero sink, formatter, clock or threshold
// supplied through InitWithOptions; zero-valued fields leave the current
// configuration untouched.
func Init() {
	InitWithOptions(Options{})
}

// InitWithOptions establishes or reconfigures the global logger. See
// Options for the meaning of each field and Init for idempotency rules.
func InitWithOptions(opts Options) {
	initMu.Lock()
	defer initMu.Unlock()
	l := globalLogger.Load()
	if l == nil {
		capacity := opts.Capacity
		if capacity <= 0 {
			capacity = DefaultCapacity
		}
		clock := opts.Clock
		if clock == nil {
			clock = newMonotonicClock()
		}
		l = &logger{
			q:     newQueue(uint64(capacity)),
			clock: clock,
		}
		l.sink.Store(sinkHolder{s: defaultSink(opts.Sink)})
		l.formatter.Store(formatterHolder{f: defaultFormatter(opts.Formatter)})
		level := opts.MaxLevel
		if level == TraceLevel {
			level = DefaultMaxLevel
		}
		l.maxLevel.Store(int32(level))
		globalLogger.Store(l)
		return
	}
	if opts.Sink != nil {
		l.sink.Store(sinkHolder{s: opts.Sink})
	}
	if opts.Formatter != nil {
		l.formatter.Store(formatterHolder{f: opts.Formatter})
	}
	if opts.Clock != nil {
		l.clock = opts.Clock
	}
	if opts.MaxLevel != TraceLevel {
		l.maxLevel.Store(int32(opts.MaxLevel))
	}
}

func defaultSink(s Sink) Sink {
	if s != nil {
		return s
	}
	return NewStdoutSink()
}

func defaultFormatter(f Formatter) Formatter {
	if f != nil {
		return f
	}
	return NewTextFormatter(TextFormatterOptions{})
}

func active() *logger {
	l := globalLogger.Load()
	if l == nil {
		panic("lazylog: not initialized: call Init before logging or flushing")
	}
	return l
}

// SetMaxLevel publishes a new runtime threshold. Call sites below it return
// without reserving queue space.
func SetMaxLevel(level Level) {
	active().maxLevel.Store(int32(level))
}

// MaxLevel returns the current runtime threshold.
func MaxLevel() Level {
	return Level(active().maxLevel.Load())
}

// SetSink replaces the active sink. Only call between flushes; swapping
// mid-flush is not supported.
func SetSink(s Sink) {
	if s == nil {
		return
	}
	active().sink.Store(sinkHolder{s: s})
}

// SetFormatter replaces the active formatter. Only call between flushes.
func SetFormatter(f Formatter) {
	if f == nil {
		return
	}
	active().formatter.Store(formatterHolder{f: f})
}

func (l *logger) activeSink() Sink {
	return l.sink.Load().(sinkHolder).s
}

func (l *logger) activeFormatter() Formatter {
	return l.formatter.Load().(formatterHolder).f
}

// resetGlobal tears the singleton down. Tests only: the queue, its cursors
// and any unflushed records are discarded.
func resetGlobal() {
	initMu.Lock()
	defer initMu.Unlock()
	globalLogger.Store(nil)
}
