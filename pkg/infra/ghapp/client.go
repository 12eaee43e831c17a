package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/utils/logging"
)

type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey
}

var _ interfaces.GitHubApp = (*Client)(nil)

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}

	return client, nil
}

func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	httpClient, err := x.buildGithubHTTPClient(installID)
	if err != nil {
		return nil, err
	}
	return github.NewClient(httpClient), nil
}

func (x *Client) buildGithubHTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))

	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github client")
	}

	client := &http.Client{Transport: itr}
	return client, nil
}

func (x *Client) HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	return x.buildGithubHTTPClient(installID)
}

// ListOrgRepos fetches every repository of the organization visible to the
// installation, following pagination until exhausted.
func (x *Client) ListOrgRepos(ctx context.Context, installID types.GitHubAppInstallID, org types.OrgName) ([]*model.GitHubAPIRepository, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	var allRepos []*model.GitHubAPIRepository
	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		// https://docs.github.com/en/rest/repos/repos?apiVersion=2022-11-28#list-organization-repositories
		repos, resp, err := client.Repositories.ListByOrg(ctx, string(org), opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list org repos", goerr.V("org", org))
		}

		for _, repo := range repos {
			allRepos = append(allRepos, &model.GitHubAPIRepository{
				ID:            repo.GetID(),
				Owner:         repo.GetOwner().GetLogin(),
				Name:          repo.GetName(),
				DefaultBranch: repo.GetDefaultBranch(),
				Language:      repo.GetLanguage(),
				Size:          int64(repo.GetSize()),
				Private:       repo.GetPrivate(),
				Archived:      repo.GetArchived(),
				CreatedAt:     repo.GetCreatedAt().Time,
				UpdatedAt:     repo.GetUpdatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed org repos",
		slog.Int("count", len(allRepos)),
		slog.Any("org", org),
		slog.Any("installID", installID),
	)

	return allRepos, nil
}
