package model

import (
	"time"

	"github.com/repostate/repostate/pkg/domain/types"
)

// Delivery is one upstream webhook notification awaiting processing
// acknowledgement. The reconciliation engine holds only a transient reference
// while handling one event; a delivery left unprocessed stays eligible for
// redelivery, which is the system's retry mechanism.
type Delivery struct {
	ID    types.DeliveryID `firestore:"id" json:"id"`
	Org   types.OrgName    `firestore:"org" json:"org"`
	OrgID types.OrgID      `firestore:"org_id" json:"org_id"`
	Event string           `firestore:"event" json:"event"`

	ReceivedAt  time.Time `firestore:"received_at" json:"received_at"`
	Processed   bool      `firestore:"processed" json:"processed"`
	ProcessedAt time.Time `firestore:"processed_at,omitempty" json:"processed_at,omitempty"`
	Attempts    int       `firestore:"attempts" json:"attempts"`
	LastError   string    `firestore:"last_error,omitempty" json:"last_error,omitempty"`
}

// Commit is one entry of a repository's commit history, provided by the
// commit history source. Date is the commit time.
type Commit struct {
	SHA    string    `firestore:"sha" json:"sha"`
	Date   time.Time `firestore:"date" json:"date"`
	Author string    `firestore:"author" json:"author"`
}

// Org is the per-organization onboarding state. The onboarding trigger
// resets its flags so pagination workers pick the organization up again.
type Org struct {
	ID               types.OrgID   `firestore:"org_id" json:"org_id"`
	Name             types.OrgName `firestore:"org" json:"org"`
	OnboardComplete  bool          `firestore:"onboard_complete" json:"onboard_complete"`
	PaginateComplete bool          `firestore:"paginate_complete" json:"paginate_complete"`
	UpdatedAt        time.Time     `firestore:"updated_at" json:"updated_at"`
}
