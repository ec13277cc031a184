package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound       = errors.New("service record not found")
	ErrInvalidOwner         = errors.New("invalid owner id")
	ErrInvalidRecordID      = errors.New("invalid record id")
	ErrInvalidClientName    = errors.New("invalid client name")
	ErrInvalidServiceDate   = errors.New("invalid service date")
	ErrInvalidServiceValue  = errors.New("invalid service value")
	ErrInvalidWarranty      = errors.New("invalid warranty duration")
	ErrInvalidPartName      = errors.New("invalid part name")
	ErrInvalidPartCost      = errors.New("invalid part cost")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// RecordInput is the validated command for creating or updating a record.
// PhotoData carries the raw upload when the form attached one; it is passed
// through the image store before the record is persisted.
type RecordInput struct {
	ClientName     string
	ServiceDate    time.Time
	WarrantyMonths int
	ServiceValue   float64
	PaymentStatus  entities.PaymentStatus
	Observations   string
	Parts          []entities.Part
	PhotoData      string
}

// RecordWithWarranty is a record annotated for display: expiry date, days
// remaining relative to the injected clock, and the resulting risk class.
type RecordWithWarranty struct {
	Record        entities.ServiceRecord
	ExpiryDate    time.Time
	DaysRemaining int
	Risk          entities.RiskClass
}

// IRecordUseCase exposes owner-scoped record operations: the form flow
// (create/update/delete), listing with search, and the warranty alert feed.

type IRecordUseCase interface {
	Create(ctx context.Context, ownerID string, in RecordInput) (entities.ServiceRecord, error)
	List(ctx context.Context, ownerID, searchTerm string) ([]RecordWithWarranty, error)
	Update(ctx context.Context, ownerID, recordID string, in RecordInput) (entities.ServiceRecord, error)
	Delete(ctx context.Context, ownerID, recordID string) error
	ExpiringSoon(ctx context.Context, ownerID string) ([]RecordWithWarranty, error)
}

type RecordUseCase struct {
	repo   interfaces.IServiceRecordRepository
	images interfaces.IImageStore
	clock  interfaces.IClock
}

var _ IRecordUseCase = (*RecordUseCase)(nil)

func NewRecordUseCase(repo interfaces.IServiceRecordRepository, images interfaces.IImageStore, clock interfaces.IClock) *RecordUseCase {
	return &RecordUseCase{repo: repo, images: images, clock: clock}
}

func (u *RecordUseCase) Create(ctx context.Context, ownerID string, in RecordInput) (entities.ServiceRecord, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.ServiceRecord{}, ErrInvalidOwner
	}

	rec, err := buildRecord(ownerID, in)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	if in.PhotoData != "" {
		photoRef, err := u.images.Store(ctx, in.PhotoData)
		if err != nil {
			log.Printf("[record][usecase] photo store failed owner_id=%s err=%v", ownerID, err)
			return entities.ServiceRecord{}, err
		}
		rec.PhotoRef = photoRef
	}

	now := time.Now().UTC()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return u.repo.Create(ctx, rec)
}

func (u *RecordUseCase) List(ctx context.Context, ownerID, searchTerm string) ([]RecordWithWarranty, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}

	records, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return u.annotate(FilterRecords(records, searchTerm)), nil
}

func (u *RecordUseCase) Update(ctx context.Context, ownerID, recordID string, in RecordInput) (entities.ServiceRecord, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.ServiceRecord{}, ErrInvalidOwner
	}
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.ServiceRecord{}, ErrInvalidRecordID
	}

	existing, err := u.repo.GetByID(ctx, ownerID, recordID)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if existing.ID == "" {
		return entities.ServiceRecord{}, ErrRecordNotFound
	}

	rec, err := buildRecord(ownerID, in)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	// The edit form never touches the photo; a new upload replaces it.
	rec.PhotoRef = existing.PhotoRef
	if in.PhotoData != "" {
		photoRef, err := u.images.Store(ctx, in.PhotoData)
		if err != nil {
			log.Printf("[record][usecase] photo store failed owner_id=%s record_id=%s err=%v", ownerID, recordID, err)
			return entities.ServiceRecord{}, err
		}
		rec.PhotoRef = photoRef
	}

	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, rec)
}

func (u *RecordUseCase) Delete(ctx context.Context, ownerID, recordID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return ErrInvalidOwner
	}
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return ErrInvalidRecordID
	}

	deleted, err := u.repo.Delete(ctx, ownerID, recordID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

func (u *RecordUseCase) ExpiringSoon(ctx context.Context, ownerID string) ([]RecordWithWarranty, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}

	records, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return u.annotate(ExpiringWithin(records, u.clock.Today(), DefaultExpiryWindowDays)), nil
}

func (u *RecordUseCase) annotate(records []entities.ServiceRecord) []RecordWithWarranty {
	today := u.clock.Today()
	out := make([]RecordWithWarranty, 0, len(records))
	for _, rec := range records {
		days := WarrantyDaysRemaining(rec, today)
		out = append(out, RecordWithWarranty{
			Record:        rec,
			ExpiryDate:    WarrantyExpiry(rec),
			DaysRemaining: days,
			Risk:          ClassifyRisk(days),
		})
	}
	return out
}

// buildRecord validates the input and assembles the record value. Nothing is
// persisted before every field passes: a rejected input is never partially
// applied.
func buildRecord(ownerID string, in RecordInput) (entities.ServiceRecord, error) {
	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		return entities.ServiceRecord{}, ErrInvalidClientName
	}
	if in.ServiceDate.IsZero() {
		return entities.ServiceRecord{}, ErrInvalidServiceDate
	}
	if in.ServiceValue < 0 {
		return entities.ServiceRecord{}, ErrInvalidServiceValue
	}
	if in.WarrantyMonths < 0 {
		return entities.ServiceRecord{}, ErrInvalidWarranty
	}
	if !entities.ValidPaymentStatus(in.PaymentStatus) {
		return entities.ServiceRecord{}, ErrInvalidPaymentStatus
	}

	parts, err := cleanParts(in.Parts)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	y, m, d := in.ServiceDate.UTC().Date()
	return entities.ServiceRecord{
		OwnerID:        ownerID,
		ClientName:     clientName,
		ServiceDate:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		WarrantyMonths: in.WarrantyMonths,
		ServiceValue:   in.ServiceValue,
		PaymentStatus:  in.PaymentStatus,
		Observations:   strings.TrimSpace(in.Observations),
		Parts:          parts,
	}, nil
}

// cleanParts drops blank placeholder rows the form sends along and validates
// the rest. A row with a cost but no name is a user mistake, not a
// placeholder.
func cleanParts(parts []entities.Part) ([]entities.Part, error) {
	out := make([]entities.Part, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p.Name)
		if name == "" && p.Cost == 0 {
			continue
		}
		if name == "" {
			return nil, ErrInvalidPartName
		}
		if p.Cost < 0 {
			return nil, ErrInvalidPartCost
		}
		out = append(out, entities.Part{Name: name, Cost: p.Cost})
	}
	return out, nil
}
