package model

import (
	"time"

	"github.com/repostate/repostate/pkg/domain/types"
)

// RepositoryPatch is a partial update of a Repository. Every field except the
// key is a pointer: nil means "absent, leave the stored value untouched",
// which is distinct from a present zero value. Stores apply patches as
// field-level partial writes and must never collapse a patch into a
// whole-record overwrite.
type RepositoryPatch struct {
	RepoID types.RepoID

	Name          *string
	Org           *types.OrgName
	OrgID         *types.OrgID
	DefaultBranch *string
	Language      *string
	Size          *int64
	Private       *bool
	Archived      *bool

	CreatedAt *time.Time
	UpdatedAt *time.Time

	Deleted          *bool
	Enabled          *bool
	OnboardComplete  *bool
	PaginateComplete *bool
}

// Apply merges the present fields of the patch into rec.
//
// CreatedAt follows its own rule: it may only be decreased, never increased,
// and it is frozen entirely once the record has been fully onboarded so that
// downstream analytics keyed on onboarding order stay stable.
func (x *RepositoryPatch) Apply(rec *Repository) {
	prevCreatedAt := rec.CreatedAt
	frozen := rec.Onboarded()

	x.Merge(rec)

	if x.CreatedAt != nil {
		if frozen || (!prevCreatedAt.IsZero() && !x.CreatedAt.Before(prevCreatedAt)) {
			rec.CreatedAt = prevCreatedAt
		}
	}
}

// Merge overwrites rec with every present field of the patch, with no
// created_at guard. This is the bulk-path semantics: a field-merge write
// equivalent to what a Firestore MergeAll set does.
func (x *RepositoryPatch) Merge(rec *Repository) {
	if x.Name != nil {
		rec.Name = *x.Name
	}
	if x.Org != nil {
		rec.Org = *x.Org
	}
	if x.OrgID != nil {
		rec.OrgID = *x.OrgID
	}
	if x.DefaultBranch != nil {
		rec.DefaultBranch = *x.DefaultBranch
	}
	if x.Language != nil {
		rec.Language = *x.Language
	}
	if x.Size != nil {
		rec.Size = *x.Size
	}
	if x.Private != nil {
		rec.Private = *x.Private
	}
	if x.Archived != nil {
		rec.Archived = *x.Archived
	}
	if x.CreatedAt != nil {
		rec.CreatedAt = *x.CreatedAt
	}
	if x.UpdatedAt != nil {
		rec.UpdatedAt = *x.UpdatedAt
	}
	if x.Deleted != nil {
		rec.Deleted = *x.Deleted
	}
	if x.Enabled != nil {
		rec.Enabled = *x.Enabled
	}
	if x.OnboardComplete != nil {
		rec.OnboardComplete = *x.OnboardComplete
	}
	if x.PaginateComplete != nil {
		rec.PaginateComplete = *x.PaginateComplete
	}
}

// NewRecord materializes a fresh Repository from the patch. When
// applyDefaults is set, fields the patch leaves absent get their insert-time
// defaults: the repository starts enabled and not yet onboarded or paginated.
func (x *RepositoryPatch) NewRecord(now time.Time, applyDefaults bool) *Repository {
	rec := &Repository{
		RepoID: x.RepoID,
	}
	if applyDefaults {
		rec.Enabled = true
		rec.OnboardComplete = false
		rec.PaginateComplete = false
		rec.Deleted = false
	}
	x.Apply(rec)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}
	return rec
}

// Fields renders the present fields as a path/value map using the stored
// field names, for stores that express partial writes as merge sets.
func (x *RepositoryPatch) Fields() map[string]any {
	fields := map[string]any{
		"repo_id": x.RepoID,
	}
	if x.Name != nil {
		fields["repo_name"] = *x.Name
	}
	if x.Org != nil {
		fields["org"] = *x.Org
	}
	if x.OrgID != nil {
		fields["org_id"] = *x.OrgID
	}
	if x.DefaultBranch != nil {
		fields["default_branch"] = *x.DefaultBranch
	}
	if x.Language != nil {
		fields["language"] = *x.Language
	}
	if x.Size != nil {
		fields["size"] = *x.Size
	}
	if x.Private != nil {
		fields["private"] = *x.Private
	}
	if x.Archived != nil {
		fields["archived"] = *x.Archived
	}
	if x.CreatedAt != nil {
		fields["created_at"] = *x.CreatedAt
	}
	if x.UpdatedAt != nil {
		fields["updated_at"] = *x.UpdatedAt
	}
	if x.Deleted != nil {
		fields["deleted"] = *x.Deleted
	}
	if x.Enabled != nil {
		fields["repo_enabled"] = *x.Enabled
	}
	if x.OnboardComplete != nil {
		fields["onboard_complete"] = *x.OnboardComplete
	}
	if x.PaginateComplete != nil {
		fields["paginate_complete"] = *x.PaginateComplete
	}
	return fields
}

// Ptr returns a pointer to v. Convenience for building patches.
func Ptr[T any](v T) *T {
	return &v
}
