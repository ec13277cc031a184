package repository

import (
	"context"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
)

func memoryRecord(id, ownerID string, serviceDate time.Time) entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:            id,
		OwnerID:       ownerID,
		ClientName:    "Cliente " + id,
		ServiceDate:   serviceDate,
		PaymentStatus: entities.PaymentStatusPago,
	}
}

func TestMemoryRecordRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRecordRepository()

	rec := memoryRecord("rec-1", "owner-1", time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))
	if _, err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("get returns stored record", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "owner-1", "rec-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "rec-1" || got.ClientName != "Cliente rec-1" {
			t.Fatalf("unexpected record %+v", got)
		}
	})

	t.Run("get unknown returns empty record", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "owner-1", "rec-404")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected empty record, got %+v", got)
		}
	})

	t.Run("get is owner scoped", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "owner-2", "rec-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected empty record for other owner, got %+v", got)
		}
	})

	t.Run("update replaces record", func(t *testing.T) {
		changed := rec
		changed.ClientName = "Maria"
		got, err := repo.Update(ctx, changed)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.ClientName != "Maria" {
			t.Fatalf("unexpected record %+v", got)
		}
	})

	t.Run("update unknown returns empty record", func(t *testing.T) {
		got, err := repo.Update(ctx, memoryRecord("rec-404", "owner-1", time.Now()))
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected empty record, got %+v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "owner-1", "rec-1")
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if !deleted {
			t.Fatalf("expected delete to report true")
		}

		deleted, err = repo.Delete(ctx, "owner-1", "rec-1")
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if deleted {
			t.Fatalf("expected second delete to report false")
		}
	})
}

func TestMemoryRecordRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRecordRepository()

	_, _ = repo.Create(ctx, memoryRecord("rec-1", "owner-1", time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	_, _ = repo.Create(ctx, memoryRecord("rec-2", "owner-1", time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)))
	_, _ = repo.Create(ctx, memoryRecord("rec-3", "owner-2", time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)))

	records, err := repo.ListByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "rec-2" || records[1].ID != "rec-1" {
		t.Fatalf("expected newest service first, got %s then %s", records[0].ID, records[1].ID)
	}
}
