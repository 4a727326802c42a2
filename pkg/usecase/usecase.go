package usecase

import (
	"github.com/m-mizutani/repopeek/pkg/domain/interfaces"
	"github.com/m-mizutani/repopeek/pkg/domain/model"
	"github.com/m-mizutani/repopeek/pkg/infra"
	"github.com/m-mizutani/repopeek/pkg/infra/cache"
)

type UseCase struct {
	clients *infra.Clients
	cache   *cache.Store
	policy  model.BranchPolicy
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithBranchPolicy sets which branches are enriched per repository
func WithBranchPolicy(policy model.BranchPolicy) Option {
	return func(x *UseCase) {
		x.policy = policy
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		cache:   cache.New(clients.CacheStorage()),
		policy:  model.DefaultBranchPolicy(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
