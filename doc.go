// Package lazylog provides a low-latency, single-producer logging core that
// defers both argument formatting and I/O away from the call site. A log
// call copies a fixed 24-byte header and the raw byte image of each
// argument into a preallocated ring queue; formatting, timestamp
// conversion and sink I/O all happen later, when the owner of the flush
// loop drains the queue.
//
// # Design overview
//
//   - Encoding contract: types opt into the fast path by implementing
//     Serializer (exact Size, infallible Encode). A matching DecodeFn,
//     stored per argument slot in the call-site metadata, turns the bytes
//     back into a display token on the flush path, where allocation is
//     allowed. Payloads carry no type tags.
//   - Byte-granular SPSC queue: three monotonic cursors (write, commit,
//     read) with power-of-two masking and cache-line-separated atomics.
//     Wraparound is handled by explicit skip-marker records, so every
//     committed byte is covered by some record's header.
//   - Call sites: each source location registers immutable metadata once
//     (severity, target, file:line, pre-parsed format template, argument
//     slots) and is referenced from records by a stable id.
//   - Two commit disciplines: Log publishes each record immediately;
//     LogDeferred leaves records invisible until CommitAll promotes the
//     commit cursor in one store.
//   - Pluggable flush pipeline: FlushOne decodes one record, rebuilds the
//     message from the template and tokens, and hands it through the
//     active Formatter to the active Sink.
//
// # Usage
//
//	var csReady = lazylog.NewCallsite(lazylog.InfoLevel, "checkout",
//		"server.go", 42, "listening on {}",
//		lazylog.Serialized(lazylog.DecodeInt64))
//
//	func main() {
//		lazylog.Init()
//		lazylog.Log(csReady, lazylog.Int64(8080))
//		// elsewhere, possibly on another goroutine:
//		lazylog.Flush()
//	}
//
// Named fields render after the message as "name=token", or inside the
// fields object when the JSON formatter is active:
//
//	var csOrder = lazylog.NewCallsite(lazylog.InfoLevel, "checkout",
//		"order.go", 17, "order accepted {}",
//		lazylog.SerializedNamed("user", lazylog.DecodeString),
//		lazylog.Serialized(lazylog.DecodeUint64))
//	lazylog.Log(csOrder, lazylog.Str("alice"), lazylog.Uint64(9001))
//	// [2026-01-02T03:04:05.000000000Z] order accepted 9001 user=alice
//
// # Concurrency
//
// Exactly one goroutine may produce (Log, LogDeferred, CommitAll) and
// exactly one may consume (FlushOne, Flush); they may be the same
// goroutine. Producer calls are wait-free and never block on the consumer;
// when the queue is full they return ErrFull and the caller decides
// whether to drop or retry. Sink, formatter and the runtime threshold are
// swapped between flushes only.
//
// # Level gating
//
// The runtime threshold (SetMaxLevel, LAZYLOG_MAX_LEVEL) is a process-wide
// atomic checked before any reservation. The build-time envelope
// (CompileMinLevel, selected with lazylog_min_* build tags) turns call
// sites below it into constant-false branches the compiler removes.
package lazylog
