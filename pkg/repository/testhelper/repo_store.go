package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/repository"
)

// Store is the full surface the conformance suite exercises. Both the
// Firestore and the in-memory implementation satisfy it.
type Store interface {
	interfaces.RepoStore
	interfaces.CommitSource
	interfaces.DeliveryQueue

	AddCommits(ctx context.Context, org types.OrgName, repoID types.RepoID, commits ...model.Commit) error
}

// TestAll runs the conformance suite against a store implementation.
func TestAll(t *testing.T, store Store) {
	t.Run("UpsertInsertAndMerge", func(t *testing.T) {
		TestUpsertInsertAndMerge(t, store)
	})
	t.Run("PatchOnlyMiss", func(t *testing.T) {
		TestPatchOnlyMiss(t, store)
	})
	t.Run("TombstoneTerminal", func(t *testing.T) {
		TestTombstoneTerminal(t, store)
	})
	t.Run("DeleteIdempotent", func(t *testing.T) {
		TestDeleteIdempotent(t, store)
	})
	t.Run("CreatedAtMonotonic", func(t *testing.T) {
		TestCreatedAtMonotonic(t, store)
	})
	t.Run("ScopeRouting", func(t *testing.T) {
		TestScopeRouting(t, store)
	})
	t.Run("BulkUpsert", func(t *testing.T) {
		TestBulkUpsert(t, store)
	})
	t.Run("EarliestCommit", func(t *testing.T) {
		TestEarliestCommit(t, store)
	})
	t.Run("DeliveryLifecycle", func(t *testing.T) {
		TestDeliveryLifecycle(t, store)
	})
	t.Run("OrgRoundTrip", func(t *testing.T) {
		TestOrgRoundTrip(t, store)
	})
}

func newScope() model.Scope {
	return model.NewScope(types.OrgName(fmt.Sprintf("org-%s", uuid.New().String()[:8])), true)
}

func newRepoID() types.RepoID {
	return types.RepoID(uuid.New().String()[:8])
}

var upsertOpts = interfaces.UpsertOptions{
	Upsert:                true,
	ApplyDefaultsOnInsert: true,
}

func TestUpsertInsertAndMerge(t *testing.T, store Store) {
	ctx := context.Background()
	scope := newScope()
	repoID := newRepoID()
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	patch := &model.RepositoryPatch{
		RepoID:    repoID,
		Name:      model.Ptr("svc"),
		Org:       model.Ptr(scope.Org),
		Language:  model.Ptr("Go"),
		Size:      model.Ptr(int64(100)),
		CreatedAt: model.Ptr(createdAt),
	}

	outcome, err := store.UpsertRepository(ctx, scope, repoID, patch, upsertOpts)
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.UpsertInserted)

	rec, err := store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, rec.Name).Equal("svc")
	gt.V(t, rec.Language).Equal("Go")
	gt.V(t, rec.CreatedAt).Equal(createdAt)

	// Insert defaults applied
	gt.True(t, rec.Enabled)
	gt.False(t, rec.OnboardComplete)
	gt.False(t, rec.PaginateComplete)
	gt.False(t, rec.Deleted)

	// Update with a sparse patch: absent fields stay untouched
	outcome, err = store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID: repoID,
		Size:   model.Ptr(int64(200)),
	}, upsertOpts)
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.UpsertUpdated)

	rec, err = store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, rec.Size).Equal(int64(200))
	gt.V(t, rec.Name).Equal("svc")
	gt.V(t, rec.Language).Equal("Go")
	gt.True(t, rec.Enabled)
}

func TestPatchOnlyMiss(t *testing.T, store Store) {
	ctx := context.Background()
	scope := newScope()

	outcome, err := store.UpsertRepository(ctx, scope, newRepoID(), &model.RepositoryPatch{
		RepoID: newRepoID(),
		Name:   model.Ptr("ghost"),
	}, interfaces.UpsertOptions{Upsert: false})
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.UpsertNotFound)
}

func TestTombstoneTerminal(t *testing.T, store Store) {
	ctx := context.Background()
	scope := newScope()
	repoID := newRepoID()

	_, err := store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID: repoID,
		Name:   model.Ptr("doomed"),
	}, upsertOpts)
	gt.NoError(t, err)

	outcome, err := store.DeleteRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.DeleteDeleted)

	// A non-recreating upsert must not touch the tombstone
	upsert, err := store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID: repoID,
		Name:   model.Ptr("zombie"),
	}, upsertOpts)
	gt.NoError(t, err)
	gt.V(t, upsert).Equal(types.UpsertSkippedTombstone)

	rec, err := store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.True(t, rec.Deleted)
	gt.V(t, rec.Name).Equal("doomed")

	// A re-creation replaces the record wholesale
	upsert, err = store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID: repoID,
		Name:   model.Ptr("reborn"),
	}, interfaces.UpsertOptions{Upsert: true, ApplyDefaultsOnInsert: true, Recreate: true})
	gt.NoError(t, err)
	gt.V(t, upsert).Equal(types.UpsertUpdated)

	rec, err = store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.False(t, rec.Deleted)
	gt.V(t, rec.Name).Equal("reborn")
	gt.True(t, rec.Enabled)
	gt.False(t, rec.OnboardComplete)
}

func TestDeleteIdempotent(t *testing.T, store Store) {
	ctx := context.Background()
	scope := newScope()
	repoID := newRepoID()

	// Deleting a missing record is benign
	outcome, err := store.DeleteRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.DeleteAbsent)

	_, err = store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID: repoID,
		Name:   model.Ptr("svc"),
	}, upsertOpts)
	gt.NoError(t, err)

	outcome, err = store.DeleteRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.DeleteDeleted)

	// Second delete is the benign absent outcome, same final state
	outcome, err = store.DeleteRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, outcome).Equal(types.DeleteAbsent)

	rec, err := store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.True(t, rec.Deleted)
}

func TestCreatedAtMonotonic(t *testing.T, store Store) {
	ctx := context.Background()
	scope := newScope()
	repoID := newRepoID()

	t0 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID:    repoID,
		CreatedAt: model.Ptr(t1),
	}, upsertOpts)
	gt.NoError(t, err)

	// Decrease is applied
	_, err = store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID:    repoID,
		CreatedAt: model.Ptr(t0),
	}, upsertOpts)
	gt.NoError(t, err)

	rec, err := store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, rec.CreatedAt).Equal(t0)

	// Increase is ignored
	_, err = store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID:    repoID,
		CreatedAt: model.Ptr(t1),
	}, upsertOpts)
	gt.NoError(t, err)

	rec, err = store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, rec.CreatedAt).Equal(t0)

	// Frozen once fully onboarded, even against a decrease
	_, err = store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID:           repoID,
		OnboardComplete:  model.Ptr(true),
		PaginateComplete: model.Ptr(true),
	}, upsertOpts)
	gt.NoError(t, err)

	_, err = store.UpsertRepository(ctx, scope, repoID, &model.RepositoryPatch{
		RepoID:    repoID,
		CreatedAt: model.Ptr(t0.Add(-24 * time.Hour)),
	}, upsertOpts)
	gt.NoError(t, err)

	rec, err = store.GetRepository(ctx, scope, repoID)
	gt.NoError(t, err)
	gt.V(t, rec.CreatedAt).Equal(t0)
}

func TestScopeRouting(t *testing.T, store Store) {
	ctx := context.Background()
	org := types.OrgName(fmt.Sprintf("org-%s", uuid.New().String()[:8]))
	live := model.NewScope(org, true)
	staging := model.NewScope(org, false)
	repoID := newRepoID()

	_, err := store.UpsertRepository(ctx, staging, repoID, &model.RepositoryPatch{
		RepoID: repoID,
		Name:   model.Ptr("staged"),
	}, upsertOpts)
	gt.NoError(t, err)

	// The live collection must not see the provisional record
	_, err = store.GetRepository(ctx, live, repoID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	rec, err := store.GetRepository(ctx, staging, repoID)
	gt.NoError(t, err)
	gt.V(t, rec.Name).Equal("staged")
}

func TestBulkUpsert(t *testing.T, store Store) {
	ctx := context.Background()
	scope := newScope()

	var patches []*model.RepositoryPatch
	for i := 0; i < 3; i++ {
		patches = append(patches, &model.RepositoryPatch{
			RepoID:           types.RepoID(fmt.Sprintf("bulk-%d", i)),
			Name:             model.Ptr(fmt.Sprintf("repo-%d", i)),
			Enabled:          model.Ptr(true),
			OnboardComplete:  model.Ptr(false),
			PaginateComplete: model.Ptr(false),
		})
	}

	gt.NoError(t, store.BulkUpsertRepositories(ctx, scope, patches))

	repos, err := store.ListRepositories(ctx, scope)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(3)

	// Re-running the bulk with a partial patch keeps untouched fields
	gt.NoError(t, store.BulkUpsertRepositories(ctx, scope, []*model.RepositoryPatch{{
		RepoID: "bulk-0",
		Size:   model.Ptr(int64(42)),
	}}))

	rec, err := store.GetRepository(ctx, scope, "bulk-0")
	gt.NoError(t, err)
	gt.V(t, rec.Size).Equal(int64(42))
	gt.V(t, rec.Name).Equal("repo-0")

	// The bulk path is a raw field merge: created_at moves to whatever the
	// patch carries, even forward, unlike the single-record upsert path.
	seeded := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	raised := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	gt.NoError(t, store.BulkUpsertRepositories(ctx, scope, []*model.RepositoryPatch{{
		RepoID:    "bulk-0",
		CreatedAt: model.Ptr(seeded),
	}}))
	gt.NoError(t, store.BulkUpsertRepositories(ctx, scope, []*model.RepositoryPatch{{
		RepoID:    "bulk-0",
		CreatedAt: model.Ptr(raised),
	}}))

	rec, err = store.GetRepository(ctx, scope, "bulk-0")
	gt.NoError(t, err)
	gt.V(t, rec.CreatedAt.Equal(raised)).Equal(true)

	// Bulk inserts carry only the patched fields; the insert-time defaults
	// belong to the single-record upsert path and to the caller's patches.
	gt.NoError(t, store.BulkUpsertRepositories(ctx, scope, []*model.RepositoryPatch{{
		RepoID: "bulk-bare",
		Name:   model.Ptr("bare"),
	}}))

	bare, err := store.GetRepository(ctx, scope, "bulk-bare")
	gt.NoError(t, err)
	gt.V(t, bare.Name).Equal("bare")
	gt.V(t, bare.Enabled).Equal(false)
	gt.V(t, bare.OnboardComplete).Equal(false)
	gt.V(t, bare.CreatedAt.IsZero()).Equal(true)
}

func TestEarliestCommit(t *testing.T, store Store) {
	ctx := context.Background()
	org := types.OrgName(fmt.Sprintf("org-%s", uuid.New().String()[:8]))
	repoID := newRepoID()

	_, err := store.EarliestCommit(ctx, org, repoID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.NoError(t, store.AddCommits(ctx, org, repoID,
		model.Commit{SHA: "bbb", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		model.Commit{SHA: "aaa", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	))

	commit, err := store.EarliestCommit(ctx, org, repoID)
	gt.NoError(t, err)
	gt.V(t, commit.SHA).Equal("aaa")
}

func TestDeliveryLifecycle(t *testing.T, store Store) {
	ctx := context.Background()
	org := types.OrgName(fmt.Sprintf("org-%s", uuid.New().String()[:8]))

	d := &model.Delivery{
		ID:         types.DeliveryID(uuid.NewString()),
		Org:        org,
		OrgID:      42,
		Event:      "repository",
		ReceivedAt: time.Now().UTC(),
	}

	gt.NoError(t, store.SaveDelivery(ctx, d))
	gt.NoError(t, store.MarkFailed(ctx, d, "store unavailable"))
	gt.NoError(t, store.NotifyProcessed(ctx, d))
}

func TestOrgRoundTrip(t *testing.T, store Store) {
	ctx := context.Background()
	org := types.OrgName(fmt.Sprintf("org-%s", uuid.New().String()[:8]))

	_, err := store.GetOrg(ctx, org)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.NoError(t, store.SaveOrg(ctx, &model.Org{
		ID:               42,
		Name:             org,
		OnboardComplete:  false,
		PaginateComplete: false,
	}))

	stored, err := store.GetOrg(ctx, org)
	gt.NoError(t, err)
	gt.V(t, stored.ID).Equal(types.OrgID(42))
	gt.False(t, stored.OnboardComplete)
}
