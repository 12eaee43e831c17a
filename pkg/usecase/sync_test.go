package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/mock"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/infra"
	"github.com/repostate/repostate/pkg/repository"
	"github.com/repostate/repostate/pkg/repository/memory"
	"github.com/repostate/repostate/pkg/usecase"
)

func upsertAll() interfaces.UpsertOptions {
	return interfaces.UpsertOptions{Upsert: true, ApplyDefaultsOnInsert: true}
}

func TestSyncOrgRepos(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	listed := []*model.GitHubAPIRepository{
		{
			ID:            101,
			Owner:         "acme",
			Name:          "alpha",
			DefaultBranch: "main",
			Language:      "Go",
			Size:          2048,
			CreatedAt:     time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       102,
			Owner:    "acme",
			Name:     "beta",
			Private:  true,
			Archived: true,
		},
	}
	ghApp := &mock.GitHubAppMock{
		ListOrgReposFunc: func(ctx context.Context, installID types.GitHubAppInstallID, org types.OrgName) ([]*model.GitHubAPIRepository, error) {
			gt.V(t, installID).Equal(types.GitHubAppInstallID(777))
			return listed, nil
		},
	}

	uc := usecase.New(infra.New(
		infra.WithRepoStore(store),
		infra.WithGitHubApp(ghApp),
	))

	scope := model.NewScope("acme", false)
	input := &model.SyncOrgReposInput{
		Org:       "acme",
		OrgID:     42,
		InstallID: 777,
		Scope:     scope,
	}
	gt.NoError(t, uc.SyncOrgRepos(ctx, input))

	repos := gt.R1(store.ListRepositories(ctx, scope)).NoError(t)
	gt.A(t, repos).Length(2)

	rec := gt.R1(store.GetRepository(ctx, scope, "101")).NoError(t)
	gt.V(t, rec.Name).Equal("alpha")
	gt.V(t, rec.Org).Equal(types.OrgName("acme"))
	gt.V(t, rec.OrgID).Equal(types.OrgID(42))
	gt.V(t, rec.Language).Equal("Go")
	gt.True(t, rec.Enabled)
	gt.False(t, rec.OnboardComplete)
	gt.False(t, rec.PaginateComplete)

	t.Run("resync merges into existing records", func(t *testing.T) {
		listed[0].Size = 4096
		gt.NoError(t, uc.SyncOrgRepos(ctx, input))

		rec := gt.R1(store.GetRepository(ctx, scope, "101")).NoError(t)
		gt.V(t, rec.Size).Equal(int64(4096))

		repos := gt.R1(store.ListRepositories(ctx, scope)).NoError(t)
		gt.A(t, repos).Length(2)
	})

	t.Run("refresh mode patches details without inserting", func(t *testing.T) {
		gt.R1(store.DeleteRepository(ctx, scope, "102")).NoError(t)

		listed[0].Language = "Zig"
		refreshed := *input
		refreshed.Refresh = true
		gt.NoError(t, uc.SyncOrgRepos(ctx, &refreshed))

		rec := gt.R1(store.GetRepository(ctx, scope, "101")).NoError(t)
		gt.V(t, rec.Language).Equal("Zig")

		// the tombstoned record was not resurrected
		tomb := gt.R1(store.GetRepository(ctx, scope, "102")).NoError(t)
		gt.True(t, tomb.Deleted)
	})

	t.Run("invalid input is rejected before any API call", func(t *testing.T) {
		err := uc.SyncOrgRepos(ctx, &model.SyncOrgReposInput{OrgID: 42, InstallID: 777})
		gt.Error(t, err)

		err = uc.SyncOrgRepos(ctx, &model.SyncOrgReposInput{Org: "acme"})
		gt.Error(t, err)
	})
}

func TestRefreshRepoDetails(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	scope := model.NewScope("acme", true)
	uc := usecase.New(infra.New(infra.WithRepoStore(store)))

	seed := &model.RepositoryPatch{RepoID: "201", Name: model.Ptr("exists")}
	gt.R1(store.UpsertRepository(ctx, scope, "201", seed, upsertAll())).NoError(t)

	patches := []*model.RepositoryPatch{
		{RepoID: "201", Size: model.Ptr(int64(99)), Language: model.Ptr("Rust")},
		{RepoID: "202", Size: model.Ptr(int64(1))}, // never tracked
	}
	gt.NoError(t, uc.RefreshRepoDetails(ctx, scope, patches))

	rec := gt.R1(store.GetRepository(ctx, scope, "201")).NoError(t)
	gt.V(t, rec.Size).Equal(int64(99))
	gt.V(t, rec.Language).Equal("Rust")

	// missing record was skipped, not created
	_, err := store.GetRepository(ctx, scope, "202")
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSetRepoUpdatedAt(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	scope := model.NewScope("acme", true)
	uc := usecase.New(infra.New(infra.WithRepoStore(store)))

	t.Run("missing record is a benign no-op", func(t *testing.T) {
		gt.NoError(t, uc.SetRepoUpdatedAt(ctx, scope, "301", time.Now()))
	})

	t.Run("existing record gets the new timestamp", func(t *testing.T) {
		seed := &model.RepositoryPatch{RepoID: "302"}
		gt.R1(store.UpsertRepository(ctx, scope, "302", seed, upsertAll())).NoError(t)

		at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
		gt.NoError(t, uc.SetRepoUpdatedAt(ctx, scope, "302", at))

		rec := gt.R1(store.GetRepository(ctx, scope, "302")).NoError(t)
		gt.V(t, rec.UpdatedAt).Equal(at)
	})

	t.Run("tombstoned record is left alone", func(t *testing.T) {
		seed := &model.RepositoryPatch{RepoID: "303"}
		gt.R1(store.UpsertRepository(ctx, scope, "303", seed, upsertAll())).NoError(t)
		gt.R1(store.DeleteRepository(ctx, scope, "303")).NoError(t)
		before := gt.R1(store.GetRepository(ctx, scope, "303")).NoError(t)

		gt.NoError(t, uc.SetRepoUpdatedAt(ctx, scope, "303", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))

		after := gt.R1(store.GetRepository(ctx, scope, "303")).NoError(t)
		gt.V(t, after.UpdatedAt).Equal(before.UpdatedAt)
		gt.True(t, after.Deleted)
	})
}

func TestIsRepoDeleted(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	scope := model.NewScope("acme", true)
	uc := usecase.New(infra.New(infra.WithRepoStore(store)))

	t.Run("unknown repo propagates not found", func(t *testing.T) {
		_, err := uc.IsRepoDeleted(ctx, scope, "401")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("tombstone flag is reported", func(t *testing.T) {
		seed := &model.RepositoryPatch{RepoID: "402"}
		gt.R1(store.UpsertRepository(ctx, scope, "402", seed, upsertAll())).NoError(t)

		gt.False(t, gt.R1(uc.IsRepoDeleted(ctx, scope, "402")).NoError(t))

		gt.R1(store.DeleteRepository(ctx, scope, "402")).NoError(t)
		gt.True(t, gt.R1(uc.IsRepoDeleted(ctx, scope, "402")).NoError(t))
	})
}
