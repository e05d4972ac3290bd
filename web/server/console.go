package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
)

// WebLogger implements core.Logger by writing tagged lines to the server log
type WebLogger struct {
	tag string
}

// NewWebLogger creates a logger whose lines are prefixed with the scene being rendered
func NewWebLogger(tag string) core.Logger {
	return &WebLogger{tag: tag}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if message == "" {
		return
	}
	log.Printf("[%s] %s", wl.tag, message)
}
