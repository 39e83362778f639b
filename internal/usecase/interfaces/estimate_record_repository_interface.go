package interfaces

import (
	"context"
	"kcc_quote/internal/domain/entities"
)

// IEstimateRecordRepository abstracts DynamoDB persistence for EstimateRecord.
//
// The quote service must be able to:
//   - insert the immutable pricing snapshot exactly once per save action
//   - list every snapshot for the admin lookup view
//   - update the remark, and nothing else, after creation
//
// Not-found is reported as a zero-value record with a nil error; only
// storage-layer failures surface as errors.

type IEstimateRecordRepository interface {
	Create(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	List(ctx context.Context) ([]entities.EstimateRecord, error)
	// UpdateRemark bumps the revision counter. A non-negative
	// expectedRevision is enforced with a conditional write; pass -1 to
	// skip the check.
	UpdateRemark(ctx context.Context, id string, remark string, expectedRevision int64) (entities.EstimateRecord, error)
}
