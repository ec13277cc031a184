package usecase

import (
	"strings"

	"gestao_servicos/internal/domain/entities"
)

// FilterRecords keeps the records whose client name or observations contain
// the term, case-insensitively. A blank term returns the input untouched.
// Plain substring scan; record sets are hundreds of entries, not millions.
func FilterRecords(records []entities.ServiceRecord, term string) []entities.ServiceRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	out := make([]entities.ServiceRecord, 0)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.ClientName), term) ||
			strings.Contains(strings.ToLower(rec.Observations), term) {
			out = append(out, rec)
		}
	}
	return out
}
