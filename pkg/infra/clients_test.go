package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/repostate/repostate/pkg/domain/mock"
	"github.com/repostate/repostate/pkg/infra"
	"github.com/repostate/repostate/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// HTTPClient should return the default http.DefaultClient
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		// Everything else should be nil without configuration
		gt.V(t, clients.GitHubApp()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.RepoStore()).Equal(nil)
		gt.V(t, clients.CommitSource()).Equal(nil)
		gt.V(t, clients.DeliveryQueue()).Equal(nil)
		gt.V(t, clients.Onboarding()).Equal(nil)
	})

	t.Run("WithGitHubApp option sets GitHub App client", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}
		clients := infra.New(infra.WithGitHubApp(mockGH))
		gt.V(t, clients.GitHubApp()).Equal(mockGH)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("WithBigQuery option sets BigQuery client", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{}
		clients := infra.New(infra.WithBigQuery(mockBQ))
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
	})

	t.Run("store options share one memory store", func(t *testing.T) {
		store := memory.New()
		clients := infra.New(
			infra.WithRepoStore(store),
			infra.WithCommitSource(store),
			infra.WithDeliveryQueue(store),
		)
		gt.V(t, clients.RepoStore()).Equal(store)
		gt.V(t, clients.CommitSource()).Equal(store)
		gt.V(t, clients.DeliveryQueue()).Equal(store)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}
		mockBQ := &mock.BigQueryMock{}
		mockHTTP := &mockHTTPClient{}

		clients := infra.New(
			infra.WithGitHubApp(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithHTTPClient(mockHTTP),
		)

		gt.V(t, clients.GitHubApp()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
