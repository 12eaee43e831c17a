package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/repository"
	"github.com/repostate/repostate/pkg/utils/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionOrgs = "orgs"
	batchSize      = 500
)

var _ interfaces.RepoStore = (*Client)(nil)

func (r *Client) orgDoc(org types.OrgName) *firestore.DocumentRef {
	return r.client.Collection(collectionOrgs).Doc(string(org))
}

// repoCollection routes to the live or provisional collection. The scope is
// passed explicitly on every call; nothing here is cached.
func (r *Client) repoCollection(scope model.Scope) *firestore.CollectionRef {
	return r.orgDoc(scope.Org).Collection(scope.Collection())
}

func (r *Client) GetRepository(ctx context.Context, scope model.Scope, repoID types.RepoID) (*model.Repository, error) {
	if repoID == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "repoID is empty")
	}

	snap, err := r.repoCollection(scope).Doc(string(repoID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("org", scope.Org),
				goerr.V("repoID", repoID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("org", scope.Org),
			goerr.V("repoID", repoID),
		)
	}

	var rec model.Repository
	if err := snap.DataTo(&rec); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("repoID", repoID),
		)
	}

	return &rec, nil
}

// UpsertRepository runs a per-key transaction so that the read-merge-write is
// atomic at the document level. This is the only concurrency control the
// reconciliation path relies on.
func (r *Client) UpsertRepository(ctx context.Context, scope model.Scope, repoID types.RepoID, patch *model.RepositoryPatch, opts interfaces.UpsertOptions) (types.UpsertOutcome, error) {
	if repoID == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "repoID is empty")
	}

	now := logging.CtxTime(ctx)
	docRef := r.repoCollection(scope).Doc(string(repoID))

	var outcome types.UpsertOutcome
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to read repository in transaction")
		}

		if err != nil || !snap.Exists() {
			if !opts.Upsert {
				outcome = types.UpsertNotFound
				return nil
			}
			outcome = types.UpsertInserted
			return tx.Set(docRef, patch.NewRecord(now, opts.ApplyDefaultsOnInsert))
		}

		var existing model.Repository
		if err := snap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode repository")
		}

		if existing.Deleted {
			if !opts.Recreate {
				outcome = types.UpsertSkippedTombstone
				return nil
			}
			outcome = types.UpsertUpdated
			return tx.Set(docRef, patch.NewRecord(now, opts.ApplyDefaultsOnInsert))
		}

		patch.Apply(&existing)
		outcome = types.UpsertUpdated
		return tx.Set(docRef, &existing)
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to upsert repository",
			goerr.V("org", scope.Org),
			goerr.V("repoID", repoID),
		)
	}

	return outcome, nil
}

// DeleteRepository tombstones the record. The document is kept so that a
// late update cannot resurrect the repository after deletion.
func (r *Client) DeleteRepository(ctx context.Context, scope model.Scope, repoID types.RepoID) (types.DeleteOutcome, error) {
	if repoID == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "repoID is empty")
	}

	now := logging.CtxTime(ctx)
	docRef := r.repoCollection(scope).Doc(string(repoID))

	var outcome types.DeleteOutcome
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to read repository in transaction")
		}
		if err != nil || !snap.Exists() {
			outcome = types.DeleteAbsent
			return nil
		}

		var existing model.Repository
		if err := snap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode repository")
		}
		if existing.Deleted {
			outcome = types.DeleteAbsent
			return nil
		}

		outcome = types.DeleteDeleted
		return tx.Update(docRef, []firestore.Update{
			{Path: "deleted", Value: true},
			{Path: "updated_at", Value: now},
		})
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to delete repository",
			goerr.V("org", scope.Org),
			goerr.V("repoID", repoID),
		)
	}

	return outcome, nil
}

// BulkUpsertRepositories writes each patch as a field-merge set in batches of
// 500 (Firestore limit). Present fields overwrite, absent fields are left
// untouched, missing documents are created. The bulk path does not apply the
// tombstone/created_at merge rules and is last-write-wins against concurrent
// single-record upserts.
func (r *Client) BulkUpsertRepositories(ctx context.Context, scope model.Scope, patches []*model.RepositoryPatch) error {
	coll := r.repoCollection(scope)

	for i := 0; i < len(patches); i += batchSize {
		end := i + batchSize
		if end > len(patches) {
			end = len(patches)
		}

		batch := r.client.Batch()
		for _, patch := range patches[i:end] {
			if patch.RepoID == "" {
				return goerr.Wrap(repository.ErrInvalidInput, "bulk upsert patch has no repoID")
			}
			batch.Set(coll.Doc(string(patch.RepoID)), patch.Fields(), firestore.MergeAll)
		}

		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to bulk upsert repositories",
				goerr.V("org", scope.Org),
				goerr.V("batchStart", i),
				goerr.V("batchEnd", end),
			)
		}
	}

	return nil
}

func (r *Client) ListRepositories(ctx context.Context, scope model.Scope) ([]*model.Repository, error) {
	iter := r.repoCollection(scope).Documents(ctx)
	defer iter.Stop()

	var repos []*model.Repository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate repositories",
				goerr.V("org", scope.Org),
			)
		}

		var rec model.Repository
		if err := snap.DataTo(&rec); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository")
		}

		repos = append(repos, &rec)
	}

	return repos, nil
}

// Org operations

func (r *Client) GetOrg(ctx context.Context, org types.OrgName) (*model.Org, error) {
	snap, err := r.orgDoc(org).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "org not found", goerr.V("org", org))
		}
		return nil, goerr.Wrap(err, "failed to get org", goerr.V("org", org))
	}

	var o model.Org
	if err := snap.DataTo(&o); err != nil {
		return nil, goerr.Wrap(err, "failed to decode org", goerr.V("org", org))
	}

	return &o, nil
}

func (r *Client) SaveOrg(ctx context.Context, o *model.Org) error {
	if o.Name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "org name is empty")
	}

	if _, err := r.orgDoc(o.Name).Set(ctx, o); err != nil {
		return goerr.Wrap(err, "failed to save org", goerr.V("org", o.Name))
	}

	return nil
}
