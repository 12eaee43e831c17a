package usecase_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/repostate/repostate/pkg/domain/mock"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/usecase"
)

func TestCreateOrUpdateAuditTable(t *testing.T) {
	ctx := context.Background()
	audit := &model.ReconcileAudit{
		ID:        "audit-1",
		Timestamp: time.Now().UTC(),
		Org:       "acme",
		Result: model.ReconcileResult{
			RepoID: "1",
			Action: types.ActionCreated,
			Upsert: types.UpsertInserted,
		},
	}

	t.Run("creates the table when it does not exist", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
		}

		schema := gt.R1(usecase.CreateOrUpdateAuditTableForTest(ctx, mockBQ, audit)).NoError(t)
		gt.A(t, mockBQ.CreateTableCalls()).Length(1)
		gt.True(t, len(schema) > 0)
	})

	t.Run("leaves a matching schema untouched", func(t *testing.T) {
		existing := gt.R1(bqs.Infer(audit)).NoError(t)
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: existing, ETag: "etag-1"}, nil
			},
		}

		gt.R1(usecase.CreateOrUpdateAuditTableForTest(ctx, mockBQ, audit)).NoError(t)
		gt.A(t, mockBQ.UpdateTableCalls()).Length(0)
	})

	t.Run("merges a diverged schema", func(t *testing.T) {
		existing := bigquery.Schema{
			{Name: "legacy_field", Type: bigquery.StringFieldType},
		}
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: existing, ETag: "etag-2"}, nil
			},
			UpdateTableFunc: func(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
				gt.V(t, eTag).Equal("etag-2")
				return nil
			},
		}

		merged := gt.R1(usecase.CreateOrUpdateAuditTableForTest(ctx, mockBQ, audit)).NoError(t)
		gt.A(t, mockBQ.UpdateTableCalls()).Length(1)
		gt.True(t, len(merged) > 1)
	})
}
