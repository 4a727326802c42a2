package infra

import (
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/repository/memory"
)

type Clients struct {
	github       interfaces.GitHub
	cacheStorage interfaces.CacheStorage
	tokenStore   interfaces.TokenStore
	renderer     interfaces.Renderer
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		cacheStorage: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) CacheStorage() interfaces.CacheStorage {
	return x.cacheStorage
}
func (x *Clients) TokenStore() interfaces.TokenStore {
	return x.tokenStore
}
func (x *Clients) Renderer() interfaces.Renderer {
	return x.renderer
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithCacheStorage(storage interfaces.CacheStorage) Option {
	return func(x *Clients) {
		x.cacheStorage = storage
	}
}

func WithTokenStore(store interfaces.TokenStore) Option {
	return func(x *Clients) {
		x.tokenStore = store
	}
}

func WithRenderer(renderer interfaces.Renderer) Option {
	return func(x *Clients) {
		x.renderer = renderer
	}
}
