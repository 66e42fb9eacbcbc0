package utils

import (
	"io"

	"github.com/MrSnakeDoc/uadb/internal/logger"
)

// Close is for deferred cleanup of read-only resources, where a close
// error carries no information.
func Close(c io.Closer) {
	_ = c.Close()
}

// MustClose closes c and reports the outcome under what. It never fails:
// the error is logged as a warning.
func MustClose(c io.Closer, log logger.Logger, what string) {
	if err := c.Close(); err != nil {
		log.Warn("failed to close", logger.String("resource", what), logger.Error(err))
		return
	}
	log.Debug("closed cleanly", logger.String("resource", what))
}
