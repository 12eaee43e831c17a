package usecase

// Export unexported functions for testing
var (
	CreateOrUpdateAuditTableForTest = createOrUpdateAuditTable
)
