package lazylog

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Sink is a byte-writing destination for formatted log lines. The consumer
// invokes it serially on the flush path; sinks are swapped only between
// flush calls, so implementations need not be thread-safe.
type Sink interface {
	// Write appends one formatted line to the destination.
	Write(p []byte) error
	// Flush forces any buffered bytes out to the destination.
	Flush() error
}

// WriterSink adapts an io.Writer into a buffered Sink. Bytes accumulate in
// an internal buffer until Flush or until the buffer fills.
type WriterSink struct {
	w *bufio.Writer
}

// NewWriterSink wraps w in a buffered sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) Write(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return errors.Wrap(err, "sink write")
	}
	return nil
}

func (s *WriterSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return errors.Wrap(err, "sink flush")
	}
	return nil
}

// LineBufferedSink buffers writes and drains whenever a write ends a line,
// matching the classic line-buffered stdio discipline.
type LineBufferedSink struct {
	w *bufio.Writer
}

// NewLineBufferedSink wraps w in a line-buffered sink.
func NewLineBufferedSink(w io.Writer) *LineBufferedSink {
	return &LineBufferedSink{w: bufio.NewWriter(w)}
}

func (s *LineBufferedSink) Write(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return errors.Wrap(err, "sink write")
	}
	if bytes.IndexByte(p, '\n') >= 0 {
		if err := s.w.Flush(); err != nil {
			return errors.Wrap(err, "sink flush")
		}
	}
	return nil
}

func (s *LineBufferedSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return errors.Wrap(err, "sink flush")
	}
	return nil
}

// NewStdoutSink returns the default sink: line-buffered standard output.
func NewStdoutSink() Sink {
	return NewLineBufferedSink(os.Stdout)
}

// NewConsoleSink returns a sink on standard output whose buffering adapts
// to the destination: per-line when stdout is an interactive terminal, a
// plain buffer when output is piped or redirected.
func NewConsoleSink() Sink {
	if isTerminal(os.Stdout) {
		return NewLineBufferedSink(os.Stdout)
	}
	return NewWriterSink(os.Stdout)
}
