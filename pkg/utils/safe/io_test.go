package safe_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/utils/safe"
)

type errorCloser struct {
	err    error
	closed bool
}

func (x *errorCloser) Close() error {
	x.closed = true
	return x.err
}

func TestClose(t *testing.T) {
	t.Run("valid reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("nil", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("closer returning error", func(t *testing.T) {
		c := &errorCloser{err: io.ErrUnexpectedEOF}
		safe.Close(c)
		gt.True(t, c.closed)
	})

	t.Run("closer returning EOF", func(t *testing.T) {
		c := &errorCloser{err: io.EOF}
		safe.Close(c)
		gt.True(t, c.closed)
	})
}
