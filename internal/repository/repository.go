// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, sqlite, objectstore).
package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrStoreUnavailable marks failures caused by an unreachable backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMissingID is returned by Save when the entity was never inserted.
	ErrMissingID = errors.New("employee has no id")
)

// Classify wraps err with ErrStoreUnavailable when it looks like a
// connectivity failure. Other errors, including context cancellation,
// are returned as is.
func Classify(err error) error {
	if err == nil || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
