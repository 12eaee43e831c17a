package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/repository"
	"github.com/repostate/repostate/pkg/utils/logging"
)

// SyncOrgRepos pulls the full repository list of an organization from the
// GitHub App installation and bulk-upserts it into the scoped collection.
// Fields absent from the listing stay untouched on existing records; new
// records get the insert defaults (enabled, not yet onboarded or paginated).
// With Refresh set, only detail patches of already-tracked records are
// written and nothing is inserted.
func (x *UseCase) SyncOrgRepos(ctx context.Context, input *model.SyncOrgReposInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	repos, err := x.clients.GitHubApp().ListOrgRepos(ctx, input.InstallID, input.Org)
	if err != nil {
		return goerr.Wrap(err, "failed to list org repos", goerr.V("org", input.Org))
	}

	if input.Refresh {
		patches := make([]*model.RepositoryPatch, 0, len(repos))
		for _, repo := range repos {
			patches = append(patches, &model.RepositoryPatch{
				RepoID:    types.RepoID(strconv.FormatInt(repo.ID, 10)),
				Name:      model.Ptr(repo.Name),
				Language:  model.Ptr(repo.Language),
				Size:      model.Ptr(repo.Size),
				CreatedAt: model.Ptr(repo.CreatedAt),
				UpdatedAt: model.Ptr(repo.UpdatedAt),
			})
		}
		if err := x.RefreshRepoDetails(ctx, input.Scope, patches); err != nil {
			return err
		}

		logging.From(ctx).Info("refreshed org repo details",
			slog.Any("org", input.Org),
			slog.Int("count", len(patches)),
			slog.String("collection", input.Scope.Collection()),
		)
		return nil
	}

	patches := make([]*model.RepositoryPatch, 0, len(repos))
	for _, repo := range repos {
		patches = append(patches, &model.RepositoryPatch{
			RepoID:        types.RepoID(strconv.FormatInt(repo.ID, 10)),
			Name:          model.Ptr(repo.Name),
			Org:           model.Ptr(input.Org),
			OrgID:         model.Ptr(input.OrgID),
			DefaultBranch: model.Ptr(repo.DefaultBranch),
			Language:      model.Ptr(repo.Language),
			Size:          model.Ptr(repo.Size),
			Private:       model.Ptr(repo.Private),
			Archived:      model.Ptr(repo.Archived),
			CreatedAt:     model.Ptr(repo.CreatedAt),
			UpdatedAt:     model.Ptr(repo.UpdatedAt),

			Enabled:          model.Ptr(true),
			OnboardComplete:  model.Ptr(false),
			PaginateComplete: model.Ptr(false),
		})
	}

	if err := x.clients.RepoStore().BulkUpsertRepositories(ctx, input.Scope, patches); err != nil {
		return goerr.Wrap(err, "failed to bulk upsert org repos",
			goerr.V("org", input.Org),
			goerr.V("count", len(patches)),
		)
	}

	logging.From(ctx).Info("synced org repos",
		slog.Any("org", input.Org),
		slog.Int("count", len(patches)),
		slog.String("collection", input.Scope.Collection()),
	)

	return nil
}

// RefreshRepoDetails applies multi-field detail patches to existing records.
// Patch-only writes: records that no longer exist are skipped, not errors.
func (x *UseCase) RefreshRepoDetails(ctx context.Context, scope model.Scope, patches []*model.RepositoryPatch) error {
	for _, patch := range patches {
		outcome, err := x.clients.RepoStore().UpsertRepository(ctx, scope, patch.RepoID, patch, interfaces.UpsertOptions{
			Upsert: false,
		})
		if err != nil {
			return goerr.Wrap(err, "failed to refresh repo details", goerr.V("repoID", patch.RepoID))
		}
		if outcome == types.UpsertNotFound {
			logging.From(ctx).Warn("skipped refresh of missing repo", slog.Any("repoID", patch.RepoID))
		}
	}
	return nil
}

// SetRepoUpdatedAt bumps the record's updated_at. A missing record is a
// benign no-op, push events for untracked repositories are expected, and
// tombstoned records are left alone.
func (x *UseCase) SetRepoUpdatedAt(ctx context.Context, scope model.Scope, repoID types.RepoID, updatedAt time.Time) error {
	deleted, err := x.IsRepoDeleted(ctx, scope, repoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logging.From(ctx).Warn("skipped updated_at for missing repo", slog.Any("repoID", repoID))
			return nil
		}
		return goerr.Wrap(err, "failed to get repository", goerr.V("repoID", repoID))
	}
	if deleted {
		logging.From(ctx).Warn("skipped updated_at for deleted repo", slog.Any("repoID", repoID))
		return nil
	}

	patch := &model.RepositoryPatch{
		RepoID:    repoID,
		UpdatedAt: model.Ptr(updatedAt),
	}
	if _, err := x.clients.RepoStore().UpsertRepository(ctx, scope, repoID, patch, interfaces.UpsertOptions{
		Upsert: false,
	}); err != nil {
		return goerr.Wrap(err, "failed to set repo updated_at", goerr.V("repoID", repoID))
	}

	return nil
}

// IsRepoDeleted reports the tombstone flag of the record.
func (x *UseCase) IsRepoDeleted(ctx context.Context, scope model.Scope, repoID types.RepoID) (bool, error) {
	rec, err := x.clients.RepoStore().GetRepository(ctx, scope, repoID)
	if err != nil {
		return false, err
	}
	return rec.Deleted, nil
}
