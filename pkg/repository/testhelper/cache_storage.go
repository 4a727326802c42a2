package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/repository"
)

// TestAll runs all test cases for CacheStorage
// This is the main entry point for testing any CacheStorage implementation
func TestAll(t *testing.T, repo interfaces.CacheStorage) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, repo)
	})
	t.Run("Delete", func(t *testing.T) {
		TestDelete(t, repo)
	})
	t.Run("BinaryValue", func(t *testing.T) {
		TestBinaryValue(t, repo)
	})
}

func newKey(prefix string) types.CacheKey {
	return types.CacheKey(fmt.Sprintf("%s_%s", prefix, uuid.New().String()[:8]))
}

// TestPutAndGet tests that stored value can be read back
func TestPutAndGet(t *testing.T, repo interfaces.CacheStorage) {
	ctx := context.Background()
	key := newKey("put_get")

	gt.NoError(t, repo.Put(ctx, key, []byte(`{"payload":[1,2,3]}`)))

	value, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, string(value)).Equal(`{"payload":[1,2,3]}`)
}

// TestOverwrite tests that later write wins
func TestOverwrite(t *testing.T, repo interfaces.CacheStorage) {
	ctx := context.Background()
	key := newKey("overwrite")

	gt.NoError(t, repo.Put(ctx, key, []byte("first")))
	gt.NoError(t, repo.Put(ctx, key, []byte("second")))

	value, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, string(value)).Equal("second")
}

// TestNotFound tests that missing key returns repository.ErrNotFound
func TestNotFound(t *testing.T, repo interfaces.CacheStorage) {
	ctx := context.Background()

	_, err := repo.Get(ctx, newKey("missing"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestDelete tests deletion of existing and missing keys
func TestDelete(t *testing.T, repo interfaces.CacheStorage) {
	ctx := context.Background()
	key := newKey("delete")

	gt.NoError(t, repo.Put(ctx, key, []byte("value")))
	gt.NoError(t, repo.Delete(ctx, key))

	_, err := repo.Get(ctx, key)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// deleting again is not an error
	gt.NoError(t, repo.Delete(ctx, key))
}

// TestBinaryValue tests that value is stored byte by byte
func TestBinaryValue(t *testing.T, repo interfaces.CacheStorage) {
	ctx := context.Background()
	key := newKey("binary")
	data := []byte{0x00, 0xff, 0x10, '"', '\n'}

	gt.NoError(t, repo.Put(ctx, key, data))

	value, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, value).Equal(data)

	// returned slice must not share memory with stored value
	value[0] = 0x01
	again, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, again[0]).Equal(byte(0x00))
}
