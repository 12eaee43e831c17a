package usecase

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/utils/errutil"
)

// insertReconcileAudit writes one audit row per logical reconciliation
// outcome. Best effort: audit sink failures are reported, never allowed to
// fail the reconciliation itself, and failed reconciliations produce no row.
func (x *UseCase) insertReconcileAudit(ctx context.Context, delivery *model.Delivery, scope model.Scope, orgID types.OrgID, result *model.ReconcileResult) {
	if x.clients.BigQuery() == nil {
		return
	}

	audit := &model.ReconcileAudit{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Org:        scope.Org,
		OrgID:      orgID,
		Collection: scope.Collection(),
		Result:     *result,
	}
	if delivery != nil {
		audit.DeliveryID = delivery.ID
	}

	schema, err := createOrUpdateAuditTable(ctx, x.clients.BigQuery(), audit)
	if err != nil {
		errutil.HandleError(ctx, "failed to prepare audit table", err)
		return
	}

	rawRecord := &model.ReconcileAuditRawRecord{
		ReconcileAudit: *audit,
		Timestamp:      audit.Timestamp.UnixMicro(),
	}

	if err := x.clients.BigQuery().Insert(ctx, schema, rawRecord); err != nil {
		errutil.HandleError(ctx, "failed to insert audit record", err)
	}
}

func createOrUpdateAuditTable(ctx context.Context, bq interfaces.BigQuery, audit *model.ReconcileAudit) (bigquery.Schema, error) {
	schema, err := bqs.Infer(audit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer audit schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create audit table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge audit schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit table")
	}

	return mergedSchema, nil
}
