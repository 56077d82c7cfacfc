package lazylog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	s, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Write([]byte("first\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Write([]byte("second\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening appends rather than truncates.
	s2, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := s2.Write([]byte("third\n")); err != nil {
		t.Fatalf("write after reopen: %v", err)
	}
	if err := s2.Close(); err != nil {
		t.Fatalf("close after reopen: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "first\nsecond\nthird\n" {
		t.Fatalf("content: %q", content)
	}
}

func TestFileSinkLockExcludesSecondOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	s, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()

	if _, err := NewFileSink(path); err == nil {
		t.Fatal("second opener should fail while the lock is held")
	}
}

func TestFileSinkBuffersUntilFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	s, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Write([]byte("buffered\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if content, err := os.ReadFile(path); err != nil || len(content) != 0 {
		t.Fatalf("content before flush: %q (err %v)", content, err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "buffered\n" {
		t.Fatalf("content after flush: %q", content)
	}
}
