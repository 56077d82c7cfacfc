package lazylog

import "sync/atomic"

// WriteFailure describes one failed sink write observed by ObservedSink.
type WriteFailure struct {
	Err       error
	Attempted int
}

// ObservedSinkStats captures aggregated failure counters for ObservedSink.
type ObservedSinkStats struct {
	Writes   uint64
	Failures uint64
}

// ObservedSink wraps a Sink and records write failures so log loss can be
// observed without changing the flush loop. The flush path already releases
// a record before surfacing its sink error; the observer preserves a count
// of how many lines were lost that way.
type ObservedSink struct {
	dst       Sink
	onFailure func(WriteFailure)
	writes    atomic.Uint64
	failures  atomic.Uint64
}

// NewObservedSink wraps dst with failure observation hooks. onFailure, when
// non-nil, runs synchronously on the flush path for every failed write.
func NewObservedSink(dst Sink, onFailure func(WriteFailure)) *ObservedSink {
	return &ObservedSink{dst: dst, onFailure: onFailure}
}

func (s *ObservedSink) Write(p []byte) error {
	s.writes.Add(1)
	err := s.dst.Write(p)
	if err != nil {
		s.failures.Add(1)
		if s.onFailure != nil {
			s.onFailure(WriteFailure{Err: err, Attempted: len(p)})
		}
	}
	return err
}

func (s *ObservedSink) Flush() error {
	return s.dst.Flush()
}

// Stats returns a snapshot of the counters.
func (s *ObservedSink) Stats() ObservedSinkStats {
	return ObservedSinkStats{
		Writes:   s.writes.Load(),
		Failures: s.failures.Load(),
	}
}
