package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/types"
	"github.com/m-mizutani/repopeek/pkg/repository"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultCollection = "repopeek_cache"

// Storage stores cache entries as Firestore documents keyed by cache key
type Storage struct {
	client        *firestore.Client
	collection    string
	clientOptions []option.ClientOption
}

var _ interfaces.CacheStorage = (*Storage)(nil)

type cacheDocument struct {
	Value []byte `firestore:"value"`
}

type Option func(*Storage)

// WithCollection sets collection name of cache documents
func WithCollection(name string) Option {
	return func(x *Storage) {
		x.collection = name
	}
}

// WithClientOptions passes options to Firestore client, e.g. credentials
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(x *Storage) {
		x.clientOptions = append(x.clientOptions, opts...)
	}
}

// New creates a new Firestore-based cache storage
func New(ctx context.Context, projectID, databaseID string, options ...Option) (*Storage, error) {
	x := &Storage{
		collection: defaultCollection,
	}
	for _, opt := range options {
		opt(x)
	}

	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID, x.clientOptions...)
	} else {
		client, err = firestore.NewClient(ctx, projectID, x.clientOptions...)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	x.client = client
	return x, nil
}

func (r *Storage) Close() error {
	return r.client.Close()
}

func (r *Storage) Get(ctx context.Context, key types.CacheKey) ([]byte, error) {
	snap, err := r.client.Collection(r.collection).Doc(key.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "cache entry not found", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to get cache entry", goerr.V("key", key))
	}

	var doc cacheDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode cache entry", goerr.V("key", key))
	}

	return doc.Value, nil
}

func (r *Storage) Put(ctx context.Context, key types.CacheKey, value []byte) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "cache key is empty")
	}

	if _, err := r.client.Collection(r.collection).Doc(key.String()).Set(ctx, cacheDocument{Value: value}); err != nil {
		return goerr.Wrap(err, "failed to put cache entry", goerr.V("key", key))
	}
	return nil
}

func (r *Storage) Delete(ctx context.Context, key types.CacheKey) error {
	if _, err := r.client.Collection(r.collection).Doc(key.String()).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return goerr.Wrap(err, "failed to delete cache entry", goerr.V("key", key))
	}
	return nil
}
