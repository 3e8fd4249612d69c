package kv

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("kv: key is required")

// Store is a flat string-keyed byte store. A missing key is reported with
// found=false and a nil error. Put must not keep value after it returns; callers
// reuse the buffer.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
