package usecase_test

import (
	"testing"

	"github.com/repostate/repostate/pkg/infra"
	"github.com/repostate/repostate/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with all clients", func(t *testing.T) {
		// This test verifies that the usecase can be created with proper clients
		// The actual behavior is tested in individual method tests
		clients := infra.New()
		uc := usecase.New(clients)

		// Test that methods are accessible (compile-time check)
		// Actual behavior tests should be in specific test functions
		_ = uc.ReconcileEvent
		_ = uc.SyncOrgRepos
	})
}
