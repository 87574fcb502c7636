// Package log provides the debug logger shared by gz packages.
//
// Every gz invocation is a short process, and several of them usually append
// to the same file, so each line carries the process id. Lines logged before
// the destination is known (git root discovery runs before the config is
// read) are held in memory up to maxPending bytes.
package log

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"sync"
)

// EnvDebugLog names the environment variable that overrides the debug log path.
const EnvDebugLog = "GZ_DEBUG_LOG"

// maxPending bounds the output held before a destination is chosen. The
// oldest lines are dropped first.
const maxPending = 64 << 10

type sinkState int

const (
	buffering sinkState = iota
	writing
	discarding
)

// sink receives the formatted lines of the package logger.
type sink struct {
	mu      sync.Mutex
	state   sinkState
	file    *os.File
	pending []byte
}

var (
	std    = &sink{}
	logger = log.New(std, fmt.Sprintf("gz[%d] ", os.Getpid()), log.LstdFlags|log.Lmicroseconds|log.Lmsgprefix)
)

// Write implements io.Writer.
func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case writing:
		return s.file.Write(p)
	case discarding:
		return len(p), nil
	}

	s.pending = append(s.pending, p...)
	if over := len(s.pending) - maxPending; over > 0 {
		cut := over
		if nl := bytes.IndexByte(s.pending[over:], '\n'); nl >= 0 {
			cut += nl + 1
		}
		s.pending = append(s.pending[:0], s.pending[cut:]...)
	}
	return len(p), nil
}

// closeFile must be called with mu held.
func (s *sink) closeFile() error {
	if s.file == nil {
		return nil
	}
	_ = s.file.Sync()
	err := s.file.Close()
	s.file = nil
	return err
}

// SetFile appends debug output to path, starting with whatever was buffered.
// An empty path, or one that cannot be opened, drops the buffer and discards
// all later output.
func SetFile(path string) error {
	std.mu.Lock()
	defer std.mu.Unlock()

	_ = std.closeFile()
	pending := std.pending
	std.pending = nil
	std.state = discarding

	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		return err
	}
	std.file = f
	std.state = writing
	if len(pending) > 0 {
		_, _ = f.Write(pending)
	}
	return nil
}

// Configure picks the debug log destination. The environment variable wins
// over the configured path; when neither is set output is discarded.
func Configure(configured string) error {
	if path := os.Getenv(EnvDebugLog); path != "" {
		return SetFile(path)
	}
	return SetFile(configured)
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Close flushes and closes the debug log file. Later output is discarded.
func Close() error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if std.state == writing {
		std.state = discarding
	}
	return std.closeFile()
}
