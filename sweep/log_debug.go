//go:build debug

package sweep

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages in builds with the debug tag.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
