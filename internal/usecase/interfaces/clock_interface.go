package interfaces

import "time"

// IClock supplies "today" to warranty computations so handlers stay
// deterministic under test. Implementations must return a date-only value
// (UTC midnight).
type IClock interface {
	Today() time.Time
}
