package utils

import (
	"errors"
	"testing"

	"github.com/MrSnakeDoc/uadb/internal/logger"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestClose(t *testing.T) {
	ok := &closer{}
	Close(ok)
	if !ok.closed {
		t.Error("Close() did not close")
	}

	failing := &closer{err: errors.New("broken pipe")}
	MustClose(failing, logger.Nop(), "test")
	if !failing.closed {
		t.Error("MustClose() did not close")
	}
}
