package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/types"
)

// Event is one normalized repository lifecycle event decoded from an upstream
// webhook delivery. It is transient: it exists only to be reconciled into the
// repository store and is never persisted on its own.
type Event struct {
	Action types.EventAction
	Repo   RepositoryPatch
}

// Validate rejects malformed events before any store access happens.
func (x *Event) Validate() error {
	if x.Repo.RepoID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "event has no repo_id")
	}
	return nil
}

// ReconcileResult describes the logical outcome of reconciling one event.
type ReconcileResult struct {
	RepoID types.RepoID      `json:"repo_id"`
	Action types.EventAction `json:"action"`

	// Upsert is set for create/update reconciliations, Delete for deletes.
	Upsert types.UpsertOutcome `json:"upsert,omitempty"`
	Delete types.DeleteOutcome `json:"delete,omitempty"`

	// CreatedAtRepaired reports that commit history revealed an earlier true
	// creation time and the event timestamp was corrected before persisting.
	CreatedAtRepaired bool `json:"created_at_repaired"`
}

// SyncOrgReposInput drives a full-list resync of an organization.
type SyncOrgReposInput struct {
	Org       types.OrgName
	OrgID     types.OrgID
	InstallID types.GitHubAppInstallID
	Scope     Scope

	// Refresh restricts the sync to detail patches of already-tracked
	// records: nothing is inserted, missing records are skipped.
	Refresh bool
}

func (x *SyncOrgReposInput) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "org is empty")
	}
	if x.InstallID == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "install ID is empty")
	}
	return nil
}
