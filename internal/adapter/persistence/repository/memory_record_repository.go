package repository

import (
	"context"
	"sort"
	"sync"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"
)

// MemoryRecordRepository keeps records in process memory. It backs local
// setups and tests where no DynamoDB endpoint is available; the semantics
// mirror the DynamoDB repository, including "empty record means missing".

type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[string]entities.ServiceRecord
}

var _ interfaces.IServiceRecordRepository = (*MemoryRecordRepository)(nil)

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{records: make(map[string]entities.ServiceRecord)}
}

func (r *MemoryRecordRepository) Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[memoryKey(rec.OwnerID, rec.ID)] = rec
	return rec, nil
}

func (r *MemoryRecordRepository) GetByID(ctx context.Context, ownerID, id string) (entities.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records[memoryKey(ownerID, id)], nil
}

func (r *MemoryRecordRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ServiceRecord, 0)
	for _, rec := range r.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ServiceDate.After(out[j].ServiceDate)
	})
	return out, nil
}

func (r *MemoryRecordRepository) Update(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memoryKey(rec.OwnerID, rec.ID)
	if _, ok := r.records[key]; !ok {
		return entities.ServiceRecord{}, nil
	}
	r.records[key] = rec
	return rec, nil
}

func (r *MemoryRecordRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memoryKey(ownerID, id)
	if _, ok := r.records[key]; !ok {
		return false, nil
	}
	delete(r.records, key)
	return true, nil
}

func memoryKey(ownerID, id string) string {
	return ownerID + "/" + id
}
