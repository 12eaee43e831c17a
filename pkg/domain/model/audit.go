package model

import (
	"time"

	"github.com/repostate/repostate/pkg/domain/types"
)

// ReconcileAudit is one reconciliation outcome recorded to the analytics
// sink. One row is written per logical outcome; failures never produce rows.
type ReconcileAudit struct {
	ID         string           `bigquery:"id" json:"id"`
	Timestamp  time.Time        `bigquery:"timestamp" json:"timestamp"`
	Org        types.OrgName    `bigquery:"org" json:"org"`
	OrgID      types.OrgID      `bigquery:"org_id" json:"org_id"`
	Collection string           `bigquery:"collection" json:"collection"`
	DeliveryID types.DeliveryID `bigquery:"delivery_id" json:"delivery_id"`
	Result     ReconcileResult  `bigquery:"result" json:"result"`
}

// ReconcileAuditRawRecord overrides Timestamp with epoch micros for insert.
type ReconcileAuditRawRecord struct {
	ReconcileAudit
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}
