package ghapp_test

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/infra/ghapp"
)

func TestNew(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("test-key")

		_, err := ghapp.New(appID, privateKey)
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("")

		client, err := ghapp.New(appID, privateKey)
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		appID := types.GitHubAppID(0)
		privateKey := types.GitHubAppPrivateKey("test-key")

		client, err := ghapp.New(appID, privateKey)
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("HTTPClient returns error with invalid key", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("invalid-key")

		client, err := ghapp.New(appID, privateKey)
		gt.NoError(t, err)

		httpClient, err := client.HTTPClient(types.GitHubAppInstallID(67890))
		gt.Error(t, err)
		gt.V(t, httpClient).Equal(nil)
	})
}

func TestListOrgRepos_Integration(t *testing.T) {
	appIDStr := os.Getenv("TEST_GITHUB_APP_ID")
	privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")
	installIDStr := os.Getenv("TEST_GITHUB_INSTALL_ID")
	org := os.Getenv("TEST_GITHUB_ORG")

	if appIDStr == "" || privateKey == "" || installIDStr == "" || org == "" {
		t.Skip("TEST_GITHUB_APP_ID, TEST_GITHUB_PRIVATE_KEY, TEST_GITHUB_INSTALL_ID and TEST_GITHUB_ORG must be set")
	}

	appID, err := strconv.ParseInt(appIDStr, 10, 64)
	gt.NoError(t, err)
	installID, err := strconv.ParseInt(installIDStr, 10, 64)
	gt.NoError(t, err)

	client, err := ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(privateKey))
	gt.NoError(t, err)

	ctx := context.Background()

	repos, err := client.ListOrgRepos(ctx, types.GitHubAppInstallID(installID), types.OrgName(org))
	gt.NoError(t, err)

	t.Logf("Found %d repositories for org: %s", len(repos), org)

	for _, repo := range repos {
		gt.V(t, repo.Owner).NotEqual("")
		gt.V(t, repo.Name).NotEqual("")
		gt.N(t, repo.ID).Greater(0)
	}
}
