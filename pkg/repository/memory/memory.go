package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/repository"
)

type cacheStorage struct {
	mu   sync.RWMutex
	data map[types.CacheKey][]byte
}

var _ interfaces.CacheStorage = (*cacheStorage)(nil)

// New creates a new in-memory cache storage. Data is lost when the process exits.
func New() interfaces.CacheStorage {
	return &cacheStorage{
		data: make(map[types.CacheKey][]byte),
	}
}

func (r *cacheStorage) Get(ctx context.Context, key types.CacheKey) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.data[key]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "cache entry not found", goerr.V("key", key))
	}

	return slices.Clone(value), nil
}

func (r *cacheStorage) Put(ctx context.Context, key types.CacheKey, value []byte) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "cache key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = slices.Clone(value)
	return nil
}

func (r *cacheStorage) Delete(ctx context.Context, key types.CacheKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
