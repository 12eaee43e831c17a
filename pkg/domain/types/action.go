package types

// EventAction is the declared lifecycle action of a repository webhook event.
// The set is closed: anything the upstream sends that is not "created",
// "updated" or "deleted" parses to ActionUnknown, and unknown actions are
// handled as updates by the reconciliation path. That default is intentional
// and relied upon by callers; do not reject unknown actions here.
type EventAction string

const (
	ActionCreated EventAction = "created"
	ActionUpdated EventAction = "updated"
	ActionDeleted EventAction = "deleted"
	ActionUnknown EventAction = "unknown"
)

// ParseAction normalizes an upstream action string into the closed set.
func ParseAction(s string) EventAction {
	switch EventAction(s) {
	case ActionCreated, ActionUpdated, ActionDeleted:
		return EventAction(s)
	default:
		return ActionUnknown
	}
}

// UpsertOutcome reports what a repository upsert actually did.
type UpsertOutcome string

const (
	UpsertInserted UpsertOutcome = "inserted"
	UpsertUpdated  UpsertOutcome = "updated"

	// UpsertSkippedTombstone means the target record is tombstoned and the
	// write was not a re-creation, so the store left it untouched.
	UpsertSkippedTombstone UpsertOutcome = "skipped_tombstone"

	// UpsertNotFound is returned by patch-only writes (Upsert=false) that
	// matched no record. It is a benign outcome, not an error.
	UpsertNotFound UpsertOutcome = "not_found"
)

// DeleteOutcome reports the result of a repository delete (tombstone) write.
type DeleteOutcome string

const (
	DeleteDeleted DeleteOutcome = "deleted"
	DeleteAbsent  DeleteOutcome = "absent"
)
