package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate swaps in a fresh sink for the duration of the test.
func isolate(t *testing.T) *sink {
	t.Helper()

	prev := output
	fresh := &sink{}
	output = fresh
	logger.SetOutput(fresh)
	t.Cleanup(func() {
		fresh.mu.Lock()
		_ = fresh.closeFile()
		fresh.mu.Unlock()
		output = prev
		logger.SetOutput(prev)
	})
	return fresh
}

func backlog(s *sink) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.backlog)
}

func TestSetFileFailureMutesLog(t *testing.T) {
	s := isolate(t)
	Printf("buffered before failure")

	unwritableDir := t.TempDir()
	if err := os.Chmod(unwritableDir, 0o500); err != nil { //nolint:gosec
		t.Fatalf("set directory permissions: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(unwritableDir, 0o700) //nolint:gosec
	})

	logPath := filepath.Join(unwritableDir, "debug.log")
	if os.Geteuid() == 0 {
		// root ignores directory permissions
		logPath = filepath.Join(unwritableDir, "missing", "debug.log")
	}
	if err := SetFile(logPath); err == nil {
		t.Fatalf("expected SetFile to fail for %q", logPath)
	}

	if !s.muted {
		t.Fatalf("expected the log to be muted after SetFile failure")
	}
	Printf("should be discarded")
	if got := backlog(s); got != "" {
		t.Fatalf("expected empty backlog, got %q", got)
	}
}

func TestSetFileFlushesBacklog(t *testing.T) {
	isolate(t)
	Printf("before file %d", 1)

	logPath := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(logPath); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	Println("after file")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "before file 1") || !strings.Contains(content, "after file") {
		t.Fatalf("unexpected log content %q", content)
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	s := isolate(t)
	Printf("dropped")

	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	Printf("also dropped")
	if got := backlog(s); got != "" {
		t.Fatalf("expected empty backlog, got %q", got)
	}
}

func TestBacklogIsCapped(t *testing.T) {
	s := isolate(t)
	chunk := strings.Repeat("x", 64*1024)
	for range 32 {
		Printf("%s", chunk)
	}
	if n := len(backlog(s)); n > maxBuffered {
		t.Fatalf("backlog grew to %d bytes", n)
	}
}

func TestSessionPrefixesLines(t *testing.T) {
	s := isolate(t)

	session := NewSession()
	if len(session.ID) != 8 {
		t.Fatalf("expected 8 character session id, got %q", session.ID)
	}
	if other := NewSession(); other.ID == session.ID {
		t.Fatalf("expected distinct session ids")
	}

	session.Logf()("fetched %d entries", 3)
	if content := backlog(s); !strings.Contains(content, "["+session.ID+"] fetched 3 entries") {
		t.Fatalf("unexpected log content %q", content)
	}
}
