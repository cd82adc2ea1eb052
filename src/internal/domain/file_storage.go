package domain

import "context"

// FileStorage is the object-store gateway. Upload stores the document under a
// fresh unguessable key and returns that key; PresignedLink mints a
// time-limited signed download URL for an existing key.
type FileStorage interface {
	Upload(ctx context.Context, document []byte) (string, error)
	PresignedLink(ctx context.Context, filename string) (string, error)
}
