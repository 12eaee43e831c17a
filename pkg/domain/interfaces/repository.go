package interfaces

import (
	"context"

	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . RepoStore CommitSource DeliveryQueue OnboardingTrigger

// UpsertOptions controls how UpsertRepository treats the target record.
type UpsertOptions struct {
	// Upsert inserts the record when absent. With Upsert false a miss is the
	// benign UpsertNotFound outcome, not an insert and not an error.
	Upsert bool

	// ApplyDefaultsOnInsert fills insert-time defaults (enabled, not yet
	// onboarded or paginated) for fields the patch leaves absent.
	ApplyDefaultsOnInsert bool

	// Recreate allows the write to replace a tombstoned record wholesale as
	// a fresh re-creation. Without it a tombstoned record is never touched.
	Recreate bool
}

// RepoStore is the durable keyed repository-state store, scoped per
// organization. Single-record operations are atomic per key; the engine
// relies on that instead of application-level locking, so implementations
// must be safe for concurrent use, including against BulkUpsertRepositories
// running over the same keys.
type RepoStore interface {
	GetRepository(ctx context.Context, scope model.Scope, repoID types.RepoID) (*model.Repository, error)
	UpsertRepository(ctx context.Context, scope model.Scope, repoID types.RepoID, patch *model.RepositoryPatch, opts UpsertOptions) (types.UpsertOutcome, error)
	DeleteRepository(ctx context.Context, scope model.Scope, repoID types.RepoID) (types.DeleteOutcome, error)
	BulkUpsertRepositories(ctx context.Context, scope model.Scope, patches []*model.RepositoryPatch) error
	ListRepositories(ctx context.Context, scope model.Scope) ([]*model.Repository, error)

	GetOrg(ctx context.Context, org types.OrgName) (*model.Org, error)
	SaveOrg(ctx context.Context, o *model.Org) error
}

// CommitSource provides commit timestamps for a repository, earliest first.
type CommitSource interface {
	// EarliestCommit returns the oldest known commit of the repository, or
	// repository.ErrNotFound when no commit history exists.
	EarliestCommit(ctx context.Context, org types.OrgName, repoID types.RepoID) (*model.Commit, error)
}

// DeliveryQueue tracks in-flight webhook deliveries awaiting acknowledgement.
type DeliveryQueue interface {
	SaveDelivery(ctx context.Context, d *model.Delivery) error

	// NotifyProcessed acknowledges the delivery. Callers treat it as a
	// best-effort side channel: a notify failure is logged, never allowed to
	// fail the reconciliation that triggered it.
	NotifyProcessed(ctx context.Context, d *model.Delivery) error

	// MarkFailed records a failed attempt, leaving the delivery eligible for
	// redelivery.
	MarkFailed(ctx context.Context, d *model.Delivery, reason string) error
}

// OnboardingTrigger kicks off the pagination/onboarding workflow for an
// organization. Invoking it once per successful create reconciliation is
// correct even when the organization was onboarded before; the implementation
// owns de-duplication.
type OnboardingTrigger interface {
	TriggerOnboarding(ctx context.Context, org types.OrgName, orgID types.OrgID) error
}
