// Package repository is the persistence accessor layer. Each entity gets a
// thin repository over *gorm.DB with List/Get/Upsert/Delete plus a count,
// mapping row shapes to the models in internal/model and nothing more.
//
// Every query runs under a fixed timeout because the backing store is a
// remote, possibly cold-starting connection. A deadline expiry surfaces as
// ErrTimeout, an empty lookup as ErrNotFound; anything else is a real
// connectivity or query error.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const queryTimeout = 10 * time.Second

var (
	// ErrNotFound signals an absent record. Not an error condition for
	// callers that can render a "nothing found" state.
	ErrNotFound = errors.New("record not found")

	// ErrTimeout signals that the store did not answer within the fixed
	// per-query ceiling.
	ErrTimeout = errors.New("query timed out")
)

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, queryTimeout)
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return err
	}
}
