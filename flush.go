package lazylog

import "fmt"

// FlushOne decodes and emits the next committed record: it reconstructs the
// message from the call site's template and the decoded argument tokens,
// runs the active formatter and hands the result to the active sink.
//
// Returns ErrEmpty when no committed records remain; callers drain by
// looping until then. A sink write failure is returned after the record has
// been released, so flushing continues with the next record on the next
// call. Inconsistent record headers panic: they indicate queue corruption.
// Exactly one goroutine may consume records.
func FlushOne() error {
	l := active()
	for {
		rec, ok := l.q.peek()
		if !ok {
			return ErrEmpty
		}
		if isSkipMarker(rec) {
			l.q.release(len(rec))
			continue
		}
		err := l.emit(rec)
		l.q.release(len(rec))
		return err
	}
}

// Flush drains committed records until the queue is empty, then flushes the
// sink. It stops at the first sink failure and returns it; the failing
// record has already been released, so a later Flush resumes behind it.
func Flush() error {
	l := active()
	for {
		err := FlushOne()
		if err == ErrEmpty {
			break
		}
		if err != nil {
			return err
		}
	}
	return l.activeSink().Flush()
}

func (l *logger) emit(rec []byte) error {
	cs, ok := lookupCallsite(recordCallsite(rec))
	if !ok {
		panic(fmt.Sprintf("lazylog: corrupt queue: unknown call-site id %d", recordCallsite(rec)))
	}
	payload := rec[recordHeaderSize:]
	tokens := make([]string, len(cs.slots))
	for i := range cs.slots {
		tokens[i], payload = cs.slots[i].Decode(payload)
	}
	line, leftover := cs.template.render(cs.slots, tokens)
	ts := l.clock.WallTime(recordTimestamp(rec))
	formatter := l.activeFormatter()
	var out string
	if sf, isStructured := formatter.(StructuredFormatter); isStructured {
		out = sf.FormatStructured(ts, cs, line, leftover)
	} else {
		out = formatter.Format(ts, cs, appendNamedFields(line, leftover))
	}
	return l.activeSink().Write([]byte(out))
}
