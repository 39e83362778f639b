package interfaces

import (
	"context"
	"kcc_quote/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for ContractRecord.

type IContractRepository interface {
	SaveOrUpdate(ctx context.Context, c entities.ContractRecord) (entities.ContractRecord, error)
	GetByID(ctx context.Context, id string) (entities.ContractRecord, error)
}
