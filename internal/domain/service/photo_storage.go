package service

import "context"

// PhotoStorage resolves stored listing photos to links a mail client can open.
type PhotoStorage interface {
	// PhotoURL returns a time-limited URL for the object key, or "" when no storage is configured.
	PhotoURL(ctx context.Context, key string) (string, error)
}
