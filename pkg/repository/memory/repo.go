package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/repository"
	"github.com/repostate/repostate/pkg/utils/logging"
)

var (
	_ interfaces.RepoStore     = (*Store)(nil)
	_ interfaces.CommitSource  = (*Store)(nil)
	_ interfaces.DeliveryQueue = (*Store)(nil)
)

func scopeKey(scope model.Scope) string {
	return string(scope.Org) + "/" + scope.Collection()
}

// collection returns the record map for the scope, creating it when create
// is set. Callers must hold the lock.
func (r *Store) collection(scope model.Scope, create bool) map[string]*model.Repository {
	key := scopeKey(scope)
	coll, ok := r.repos[key]
	if !ok && create {
		coll = make(map[string]*model.Repository)
		r.repos[key] = coll
	}
	return coll
}

func (r *Store) GetRepository(ctx context.Context, scope model.Scope, repoID types.RepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.collection(scope, false)[string(repoID)]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("org", scope.Org),
			goerr.V("repoID", repoID),
		)
	}

	return copyRepository(rec), nil
}

func (r *Store) UpsertRepository(ctx context.Context, scope model.Scope, repoID types.RepoID, patch *model.RepositoryPatch, opts interfaces.UpsertOptions) (types.UpsertOutcome, error) {
	if repoID == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "repoID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := logging.CtxTime(ctx)
	coll := r.collection(scope, true)

	existing, ok := coll[string(repoID)]
	if !ok {
		if !opts.Upsert {
			return types.UpsertNotFound, nil
		}
		coll[string(repoID)] = patch.NewRecord(now, opts.ApplyDefaultsOnInsert)
		return types.UpsertInserted, nil
	}

	if existing.Deleted {
		if !opts.Recreate {
			return types.UpsertSkippedTombstone, nil
		}
		// Fresh re-creation: the tombstoned record is replaced wholesale.
		coll[string(repoID)] = patch.NewRecord(now, opts.ApplyDefaultsOnInsert)
		return types.UpsertUpdated, nil
	}

	rec := copyRepository(existing)
	patch.Apply(rec)
	coll[string(repoID)] = rec
	return types.UpsertUpdated, nil
}

func (r *Store) DeleteRepository(ctx context.Context, scope model.Scope, repoID types.RepoID) (types.DeleteOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll := r.collection(scope, false)
	existing, ok := coll[string(repoID)]
	if !ok || existing.Deleted {
		return types.DeleteAbsent, nil
	}

	rec := copyRepository(existing)
	rec.Deleted = true
	rec.UpdatedAt = logging.CtxTime(ctx)
	coll[string(repoID)] = rec
	return types.DeleteDeleted, nil
}

// BulkUpsertRepositories applies each patch as a raw field-merge set,
// matching the Firestore bulk path: present fields overwrite unconditionally
// (including created_at), absent fields are left untouched, and missing
// records are created carrying only the patched fields. Last write wins
// against concurrent single-record upserts.
func (r *Store) BulkUpsertRepositories(ctx context.Context, scope model.Scope, patches []*model.RepositoryPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll := r.collection(scope, true)

	for _, patch := range patches {
		if patch.RepoID == "" {
			return goerr.Wrap(repository.ErrInvalidInput, "bulk upsert patch has no repoID")
		}
		rec := &model.Repository{RepoID: patch.RepoID}
		if existing, ok := coll[string(patch.RepoID)]; ok {
			rec = copyRepository(existing)
		}
		patch.Merge(rec)
		coll[string(patch.RepoID)] = rec
	}

	return nil
}

func (r *Store) ListRepositories(ctx context.Context, scope model.Scope) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coll := r.collection(scope, false)
	repos := make([]*model.Repository, 0, len(coll))
	for _, rec := range coll {
		repos = append(repos, copyRepository(rec))
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].RepoID < repos[j].RepoID })

	return repos, nil
}

// Org operations

func (r *Store) GetOrg(ctx context.Context, org types.OrgName) (*model.Org, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orgs[string(org)]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "org not found", goerr.V("org", org))
	}

	cp := *o
	return &cp, nil
}

func (r *Store) SaveOrg(ctx context.Context, o *model.Org) error {
	if o.Name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "org name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *o
	r.orgs[string(o.Name)] = &cp
	return nil
}

// Commit history source

func commitKey(org types.OrgName, repoID types.RepoID) string {
	return string(org) + "/" + string(repoID)
}

func (r *Store) EarliestCommit(ctx context.Context, org types.OrgName, repoID types.RepoID) (*model.Commit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commits := r.commits[commitKey(org, repoID)]
	if len(commits) == 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "no commit history",
			goerr.V("org", org),
			goerr.V("repoID", repoID),
		)
	}

	cp := commits[0]
	return &cp, nil
}

// AddCommits stores commit history for a repository, keeping earliest-first
// order regardless of insertion order.
func (r *Store) AddCommits(ctx context.Context, org types.OrgName, repoID types.RepoID, commits ...model.Commit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := commitKey(org, repoID)
	r.commits[key] = append(r.commits[key], commits...)
	sort.Slice(r.commits[key], func(i, j int) bool {
		return r.commits[key][i].Date.Before(r.commits[key][j].Date)
	})
	return nil
}

// Delivery queue

func (r *Store) SaveDelivery(ctx context.Context, d *model.Delivery) error {
	if d.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "delivery ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *d
	r.deliveries[string(d.ID)] = &cp
	return nil
}

func (r *Store) NotifyProcessed(ctx context.Context, d *model.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.deliveries[string(d.ID)]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "delivery not found", goerr.V("deliveryID", d.ID))
	}

	stored.Processed = true
	stored.ProcessedAt = logging.CtxTime(ctx)
	return nil
}

func (r *Store) MarkFailed(ctx context.Context, d *model.Delivery, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.deliveries[string(d.ID)]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "delivery not found", goerr.V("deliveryID", d.ID))
	}

	stored.Attempts++
	stored.LastError = reason
	return nil
}

// GetDelivery returns the stored delivery state, mainly for tests.
func (r *Store) GetDelivery(ctx context.Context, id types.DeliveryID) (*model.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.deliveries[string(id)]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "delivery not found", goerr.V("deliveryID", id))
	}

	cp := *d
	return &cp, nil
}

func copyRepository(rec *model.Repository) *model.Repository {
	cp := *rec
	return &cp
}
