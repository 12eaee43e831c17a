package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/repository"
	"github.com/repostate/repostate/pkg/utils/errutil"
	"github.com/repostate/repostate/pkg/utils/logging"
)

// ReconcileEvent applies one repository lifecycle event to the store under
// the given scope. The first collaborator error aborts the reconciliation
// with no further side effects; an unacknowledged delivery staying eligible
// for redelivery is the retry mechanism, there is no internal retry or
// compensation.
//
// delivery may be nil for non-webhook invocations; queue acknowledgement is
// skipped then.
func (x *UseCase) ReconcileEvent(ctx context.Context, event *model.Event, delivery *model.Delivery, scope model.Scope) (*model.ReconcileResult, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	result := &model.ReconcileResult{
		RepoID: event.Repo.RepoID,
		Action: event.Action,
	}

	orgID := types.OrgID(0)
	if event.Repo.OrgID != nil {
		orgID = *event.Repo.OrgID
	}
	if orgID == 0 && delivery != nil {
		orgID = delivery.OrgID
	}

	if event.Action == types.ActionDeleted {
		outcome, err := x.clients.RepoStore().DeleteRepository(ctx, scope, event.Repo.RepoID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to delete repository",
				goerr.V("repoID", event.Repo.RepoID),
				goerr.V("org", scope.Org),
			)
		}
		result.Delete = outcome

		x.notifyProcessed(ctx, delivery)
		x.insertReconcileAudit(ctx, delivery, scope, orgID, result)
		return result, nil
	}

	// Non-create actions may carry a creation timestamp later than the true
	// one; the earliest known commit is the authority when it is older.
	patch := event.Repo
	if event.Action != types.ActionCreated {
		repaired, err := x.repairCreatedAt(ctx, scope.Org, &patch)
		if err != nil {
			return nil, err
		}
		result.CreatedAtRepaired = repaired
	}

	outcome, err := x.clients.RepoStore().UpsertRepository(ctx, scope, patch.RepoID, &patch, interfaces.UpsertOptions{
		Upsert:                true,
		ApplyDefaultsOnInsert: true,
		Recreate:              event.Action == types.ActionCreated,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert repository",
			goerr.V("repoID", patch.RepoID),
			goerr.V("org", scope.Org),
			goerr.V("action", event.Action),
		)
	}
	result.Upsert = outcome

	x.notifyProcessed(ctx, delivery)

	// Onboarding is governed by the declared action alone, never by whether
	// the upsert turned out to be an insert or an update.
	if event.Action == types.ActionCreated {
		if err := x.clients.Onboarding().TriggerOnboarding(ctx, scope.Org, orgID); err != nil {
			return nil, goerr.Wrap(err, "failed to trigger onboarding",
				goerr.V("org", scope.Org),
				goerr.V("orgID", orgID),
			)
		}
	}

	x.insertReconcileAudit(ctx, delivery, scope, orgID, result)

	logging.From(ctx).Info("reconciled repository event",
		slog.Any("repoID", result.RepoID),
		slog.Any("action", result.Action),
		slog.Any("outcome", result.Upsert),
		slog.Bool("createdAtRepaired", result.CreatedAtRepaired),
	)

	return result, nil
}

// repairCreatedAt queries the commit history source and lowers the patch's
// creation timestamp when an older commit exists. The query happens on every
// non-create reconciliation so a transient source outage is re-checked on
// redelivery instead of being skipped for good.
func (x *UseCase) repairCreatedAt(ctx context.Context, org types.OrgName, patch *model.RepositoryPatch) (bool, error) {
	if x.clients.CommitSource() == nil {
		return false, nil
	}

	commit, err := x.clients.CommitSource().EarliestCommit(ctx, org, patch.RepoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get earliest commit",
			goerr.V("repoID", patch.RepoID),
			goerr.V("org", org),
		)
	}

	if patch.CreatedAt == nil || !commit.Date.Before(*patch.CreatedAt) {
		return false, nil
	}

	patch.CreatedAt = model.Ptr(commit.Date)
	return true, nil
}

// notifyProcessed acknowledges the delivery. Best effort: a failure here must
// not fail a reconciliation that already succeeded.
func (x *UseCase) notifyProcessed(ctx context.Context, d *model.Delivery) {
	if d == nil || x.clients.DeliveryQueue() == nil {
		return
	}
	if err := x.clients.DeliveryQueue().NotifyProcessed(ctx, d); err != nil {
		errutil.HandleError(ctx, "failed to notify delivery processed", err)
	}
}
