package server

// Export unexported functions for testing
var (
	RepositoryEventToInputForTest = repositoryEventToInput
	PushEventToInputForTest       = pushEventToInput
)

type ReconcileInput = reconcileInput
