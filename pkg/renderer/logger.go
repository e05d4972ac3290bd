package renderer

import (
	"log"
	"os"
	"sync"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, keeping stdout free for image data
type DefaultLogger struct {
	out *log.Logger
}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.out.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{out: log.New(os.Stderr, "", log.LstdFlags)}
}

// SyncLogger serialises Printf calls so lines from concurrent workers never interleave
type SyncLogger struct {
	mu     sync.Mutex
	logger core.Logger
}

// NewSyncLogger wraps logger for use from many goroutines
func NewSyncLogger(logger core.Logger) *SyncLogger {
	return &SyncLogger{logger: logger}
}

// Printf implements core.Logger
func (sl *SyncLogger) Printf(format string, args ...interface{}) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.logger.Printf(format, args...)
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements core.Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
