package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/repository"
	"github.com/m-mizutani/repopeek/pkg/utils/logging"
)

// envelope is the stored form of a cache entry
type envelope struct {
	Payload   json.RawMessage `json:"payload"`
	WrittenAt int64           `json:"written_at"`
}

// Store keeps JSON values with the time they were written. It never expires entries and never returns storage errors to callers: a broken entry is a miss.
type Store struct {
	storage interfaces.CacheStorage
}

func New(storage interfaces.CacheStorage) *Store {
	return &Store{storage: storage}
}

// Get returns stored entry. Malformed entry is cleared and reported as a miss.
func (x *Store) Get(ctx context.Context, key types.CacheKey) (*model.CacheEntry, bool) {
	logger := logging.From(ctx).With("key", key)

	raw, err := x.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Warn("failed to read cache", "error", err)
		}
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Payload) == 0 || env.WrittenAt <= 0 {
		logger.Warn("malformed cache entry, clearing", "error", err)
		x.Clear(ctx, key)
		return nil, false
	}

	return &model.CacheEntry{
		Payload:   env.Payload,
		WrittenAt: time.UnixMilli(env.WrittenAt),
	}, true
}

// Set stores value with current time and returns the time. When the first write fails, the key is cleared and written once again.
func (x *Store) Set(ctx context.Context, key types.CacheKey, value any) time.Time {
	logger := logging.From(ctx).With("key", key)
	now := logging.CtxTime(ctx)

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn("failed to encode cache value", "error", goerr.Wrap(err, "failed to marshal cache payload"))
		return now
	}

	raw, err := json.Marshal(envelope{Payload: payload, WrittenAt: now.UnixMilli()})
	if err != nil {
		logger.Warn("failed to encode cache envelope", "error", err)
		return now
	}

	if err := x.storage.Put(ctx, key, raw); err != nil {
		logger.Warn("failed to write cache, retrying after clear", "error", err)
		x.Clear(ctx, key)

		if err := x.storage.Put(ctx, key, raw); err != nil {
			logger.Warn("failed to write cache, dropped", "error", err)
		}
	}

	return now
}

// Clear removes the key. Errors are logged only.
func (x *Store) Clear(ctx context.Context, key types.CacheKey) {
	if err := x.storage.Delete(ctx, key); err != nil {
		logging.From(ctx).Warn("failed to clear cache", "key", key, "error", err)
	}
}

// Load reads and decodes a typed value. Payload that can not be decoded into T is cleared and reported as a miss.
func Load[T any](ctx context.Context, store *Store, key types.CacheKey) (T, time.Time, bool) {
	var value T

	entry, ok := store.Get(ctx, key)
	if !ok {
		return value, time.Time{}, false
	}

	if err := json.Unmarshal(entry.Payload, &value); err != nil {
		logging.From(ctx).Warn("malformed cache payload, clearing", "key", key, "error", err)
		store.Clear(ctx, key)
		var zero T
		return zero, time.Time{}, false
	}

	return value, entry.WrittenAt, true
}
