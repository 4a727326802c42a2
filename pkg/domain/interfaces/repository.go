package interfaces

import (
	"context"

	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

//go:generate moq -out ../mock/cache_storage_mock.go -pkg mock . CacheStorage

// CacheStorage is a byte key-value backend of the cache store. Get returns repository.ErrNotFound for a missing key and Delete of a missing key is not an error.
type CacheStorage interface {
	Get(ctx context.Context, key types.CacheKey) ([]byte, error)
	Put(ctx context.Context, key types.CacheKey, value []byte) error
	Delete(ctx context.Context, key types.CacheKey) error
}
