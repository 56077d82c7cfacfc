package lazylog

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// FileSink appends formatted lines to a file. The file is opened in append
// mode under an advisory lock so that two processes pointed at the same
// path do not interleave partial lines.
type FileSink struct {
	file *os.File
	w    *bufio.Writer
	lock *flock.Flock
	path string
}

// NewFileSink opens (creating if needed) the file at path for appending and
// takes an advisory lock on it. Parent directories are created.
func NewFileSink(path string) (*FileSink, error) {
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	lock := flock.New(cleanPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", cleanPath)
	}
	if !locked {
		return nil, errors.Errorf("log file %s is locked by another process", cleanPath)
	}
	file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, errors.Wrapf(err, "open %s", cleanPath)
	}
	return &FileSink{
		file: file,
		w:    bufio.NewWriter(file),
		lock: lock,
		path: cleanPath,
	}, nil
}

// Path returns the cleaned path the sink appends to.
func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Write(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return errors.Wrapf(err, "write %s", s.path)
	}
	return nil
}

func (s *FileSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", s.path)
	}
	return nil
}

// Close flushes buffered bytes, releases the advisory lock and closes the
// file. The sink must not be used afterwards.
func (s *FileSink) Close() error {
	flushErr := s.Flush()
	if err := s.lock.Unlock(); err != nil && flushErr == nil {
		flushErr = errors.Wrapf(err, "unlock %s", s.path)
	}
	if err := s.file.Close(); err != nil && flushErr == nil {
		flushErr = errors.Wrapf(err, "close %s", s.path)
	}
	return flushErr
}
