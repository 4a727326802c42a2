package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/repopeek/pkg/domain/model"
)

type UseCase interface {
	LoadRepositories(ctx context.Context, input *model.LoadInput) (*model.LoadResult, error)
	SetupCredentials(ctx context.Context, input *model.SetupInput) (*model.LoadResult, error)
	GetSettings(ctx context.Context) model.Settings
	SaveSettings(ctx context.Context, settings model.Settings) model.Settings
	ClearCache(ctx context.Context)
	Logout(ctx context.Context) error
}
