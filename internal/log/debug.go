// Package log is the process-wide debug log. Lines written before a file is
// configured are held in memory and flushed once SetFile succeeds, so start-up
// messages survive config loading.
package log

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"
)

// maxBuffered caps the in-memory backlog.
const maxBuffered = 1 << 20

// sink is the io.Writer behind the package logger.
type sink struct {
	mu      sync.Mutex
	file    *os.File
	backlog []byte
	muted   bool
}

var (
	output = &sink{}
	logger = log.New(output, "", log.LstdFlags|log.Lmicroseconds)
)

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.muted:
	case s.file != nil:
		n, err := s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	case len(s.backlog)+len(p) <= maxBuffered:
		s.backlog = append(s.backlog, p...)
	}
	return len(p), nil
}

// open points the sink at path and flushes the backlog. An empty path, or a
// file that cannot be opened, mutes the sink for good.
func (s *sink) open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.closeFile()
	if path == "" {
		s.mute()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		s.mute()
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	s.file, s.muted = f, false
	if len(s.backlog) > 0 {
		_, _ = f.Write(s.backlog)
		_ = f.Sync()
		s.backlog = nil
	}
	return nil
}

func (s *sink) mute() {
	s.muted = true
	s.backlog = nil
}

func (s *sink) closeFile() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// SetFile sends the debug log to path, creating it if needed. An empty path
// discards everything.
func SetFile(path string) error {
	return output.open(path)
}

// Close closes the debug log file, if any.
func Close() error {
	output.mu.Lock()
	defer output.mu.Unlock()
	return output.closeFile()
}

// Printf logs a formatted line.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Println logs its operands.
func Println(v ...any) {
	logger.Println(v...)
}

// Session tags every line with a short random id so that interleaved runs
// writing to the same file can be told apart.
type Session struct {
	ID string
}

// NewSession returns a session with a fresh id.
func NewSession() Session {
	return Session{ID: uuid.NewString()[:8]}
}

// Printf logs with the session prefix.
func (s Session) Printf(format string, args ...any) {
	logger.Printf("[%s] "+format, append([]any{s.ID}, args...)...)
}

// Logf returns Printf as a plain function value for components that accept
// a logf callback.
func (s Session) Logf() func(string, ...any) {
	return s.Printf
}
