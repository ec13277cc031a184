package interfaces

import "context"

// IImageStore abstracts photo processing. Store takes the raw upload (a
// base64 data URL from the form) and returns the opaque photo reference kept
// on the record. The core never looks inside the reference.
type IImageStore interface {
	Store(ctx context.Context, raw string) (photoRef string, err error)
}
