// Package storage provides the key-value persistence adapter the entity
// repositories are built on. Values are whole JSON documents stored at
// fixed keys; backends only move bytes.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
)

// ErrNotFound is returned by Get when no value exists at the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the byte-level contract every backend implements.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

var logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// Load reads and decodes the value at key. A missing key, a failed read, or
// a value that does not decode all yield def. Failures are logged here and
// never surfaced to the caller.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.ErrorContext(ctx, "storage read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.ErrorContext(ctx, "storage value corrupt, using default",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return def
	}
	return v
}

// Save encodes v and writes it at key. Write failures are logged and
// swallowed; from the caller's perspective the operation is fire-and-forget.
func Save[T any](ctx context.Context, s Store, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.ErrorContext(ctx, "storage encode failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.Set(ctx, key, raw); err != nil {
		logger.ErrorContext(ctx, "storage write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
