package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"time"

	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
)

type UseCase interface {
	ReconcileEvent(ctx context.Context, event *model.Event, delivery *model.Delivery, scope model.Scope) (*model.ReconcileResult, error)
	SetRepoUpdatedAt(ctx context.Context, scope model.Scope, repoID types.RepoID, updatedAt time.Time) error
}
