package tabular

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConnReset(t *testing.T) {
	assert.True(t, IsConnReset(syscall.ECONNRESET))
	assert.True(t, IsConnReset(fmt.Errorf("read: %w", syscall.ECONNRESET)))
	assert.True(t, IsConnReset(errors.New("read tcp: connection reset by peer")))
	assert.False(t, IsConnReset(errors.New("boom")))
	assert.False(t, IsConnReset(nil))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(fmt.Errorf("read: %w", context.DeadlineExceeded)))
	assert.False(t, IsTimeout(errors.New("boom")))
	assert.False(t, IsTimeout(nil))
}
