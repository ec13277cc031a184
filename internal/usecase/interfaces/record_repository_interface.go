package interfaces

import (
	"context"

	"gestao_servicos/internal/domain/entities"
)

// IServiceRecordRepository abstracts DynamoDB persistence for ServiceRecord.
//
// Every operation is scoped to an owner: one user never sees another user's
// records. Missing records come back as zero values with an empty ID, never
// as an error; the usecase layer decides what "not found" means.

type IServiceRecordRepository interface {
	Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.ServiceRecord, error)
	// ListByOwner returns the owner's records ordered by service date,
	// newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]entities.ServiceRecord, error)
	Update(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error)
	// Delete reports whether the record existed.
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
