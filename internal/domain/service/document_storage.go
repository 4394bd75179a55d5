package service

import (
	"context"
	"io"
)

// DocumentStorage stores uploaded reservation documents and returns a stable reference.
type DocumentStorage interface {
	// Upload writes r under key and returns the reference URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
