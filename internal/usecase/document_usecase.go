package usecase

import (
	"context"
	"io"

	"funnel/internal/domain/entity"
)

// DocumentFile is an uploaded file as received.
type DocumentFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadedDocument is the stored reference of an uploaded document.
type UploadedDocument struct {
	Kind entity.DocumentKind `json:"kind"`
	URL  string              `json:"url"`
}

// DocumentUsecase stores reservation documents.
type DocumentUsecase interface {
	// Upload stores the file for the inquiry and returns its reference. The caller
	// attaches the reference with a reservation update.
	Upload(ctx context.Context, rawID, kind string, file *DocumentFile) (*UploadedDocument, error)
}
