package storage

import (
	"context"
	"time"
)

// Service resolves stored avatar locations into URLs a browser can fetch.
type Service interface {
	// ResolveAvatarURL turns an s3://bucket/key location into a time-limited
	// presigned URL. Non-s3 locations are returned unchanged.
	ResolveAvatarURL(ctx context.Context, location string, expires time.Duration) (string, error)
}
