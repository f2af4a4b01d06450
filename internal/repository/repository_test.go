package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("syntax error")},
		{name: "context canceled", err: context.Canceled},
		{name: "deadline exceeded", err: fmt.Errorf("query: %w", context.DeadlineExceeded)},
		{name: "bad conn", err: driver.ErrBadConn, wantUnavailable: true},
		{name: "connection refused", err: fmt.Errorf("dial: %w", syscall.ECONNREFUSED), wantUnavailable: true},
		{name: "net op error", err: opErr, wantUnavailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.err)
			assert.Equal(t, tt.wantUnavailable, errors.Is(got, ErrStoreUnavailable))
		})
	}
}

func TestClassify_AlreadyWrapped(t *testing.T) {
	err := fmt.Errorf("%w: boom", ErrStoreUnavailable)
	assert.Same(t, err, Classify(err))
}
