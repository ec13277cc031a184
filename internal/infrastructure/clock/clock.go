package clock

import (
	"time"

	"gestao_servicos/internal/usecase/interfaces"
)

// SystemClock reports the current UTC calendar day. Warranty math works on
// whole days, so the time of day is dropped here once instead of in every
// caller.

type SystemClock struct{}

var _ interfaces.IClock = (*SystemClock)(nil)

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (SystemClock) Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
