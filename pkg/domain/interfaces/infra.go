package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp

import (
	"context"
	"net/http"

	"cloud.google.com/go/bigquery"

	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

type GitHubApp interface {
	ListOrgRepos(ctx context.Context, installID types.GitHubAppInstallID, org types.OrgName) ([]*model.GitHubAPIRepository, error)
	HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error)
}
