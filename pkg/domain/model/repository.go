package model

import (
	"time"

	"github.com/repostate/repostate/pkg/domain/types"
)

// Repository is one tracked repository within one organization. RepoID is the
// external stable identifier and the sole identity key for upsert matching;
// it is unique within the organization scope.
type Repository struct {
	RepoID        types.RepoID  `firestore:"repo_id" json:"repo_id"`
	Name          string        `firestore:"repo_name" json:"repo_name"`
	Org           types.OrgName `firestore:"org" json:"org"`
	OrgID         types.OrgID   `firestore:"org_id" json:"org_id"`
	DefaultBranch string        `firestore:"default_branch" json:"default_branch"`
	Language      string        `firestore:"language" json:"language"`
	Size          int64         `firestore:"size" json:"size"`
	Private       bool          `firestore:"private" json:"private"`
	Archived      bool          `firestore:"archived" json:"archived"`

	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`

	// Deleted is a tombstone: delete events mark the record instead of
	// removing it, so a late update cannot resurrect the repository.
	Deleted bool `firestore:"deleted" json:"deleted"`

	Enabled          bool `firestore:"repo_enabled" json:"repo_enabled"`
	OnboardComplete  bool `firestore:"onboard_complete" json:"onboard_complete"`
	PaginateComplete bool `firestore:"paginate_complete" json:"paginate_complete"`
}

// Onboarded reports whether the record has fully passed onboarding and
// pagination. CreatedAt is frozen once this is true.
func (x *Repository) Onboarded() bool {
	return x.OnboardComplete && x.PaginateComplete
}

// Scope routes a store access to the per-organization collection. The
// SchedulerEnabled flag selects between the live collection and the
// provisional one; it must be supplied explicitly on every call and is never
// cached or taken from ambient configuration.
type Scope struct {
	Org              types.OrgName
	SchedulerEnabled bool
}

const (
	collectionRepos        = "repos"
	collectionStagingRepos = "staging_repos"
)

func NewScope(org types.OrgName, schedulerEnabled bool) Scope {
	return Scope{Org: org, SchedulerEnabled: schedulerEnabled}
}

// Collection returns the logical collection name for this scope.
func (x Scope) Collection() string {
	if x.SchedulerEnabled {
		return collectionRepos
	}
	return collectionStagingRepos
}

// GitHubAPIRepository is a repository as returned by the GitHub REST API,
// consumed by the bulk synchronizer.
type GitHubAPIRepository struct {
	ID            int64
	Owner         string
	Name          string
	DefaultBranch string
	Language      string
	Size          int64
	Private       bool
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
