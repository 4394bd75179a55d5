package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"funnel/config"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	mockRepo "funnel/internal/mocks/repository"
	mockSvc "funnel/internal/mocks/service"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func createTestDocumentService(t *testing.T) (usecase.DocumentUsecase, *mockRepo.MockInquiryRepository, *mockSvc.MockDocumentStorage) {
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	storage := mockSvc.NewMockDocumentStorage(t)

	srv := NewDocumentService(DocumentServiceParams{
		InquiryRepo: inquiryRepo,
		Storage:     storage,
		Config:      &config.Config{Storage: &config.StorageConfig{MaxUploadBytes: 1024}},
		Logger:      newDiscardLogger(),
	})

	return srv, inquiryRepo, storage
}

func TestDocumentService_Upload_SniffsContentType(t *testing.T) {
	srv, inquiryRepo, storage := createTestDocumentService(t)
	ctx := context.Background()
	stored := newStoredInquiry(entity.StatusScheduled)

	inquiryRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "inquiries/"+stored.ID.String()+"/idCard-") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			body, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}
			if !bytes.Equal(body, pngHeader) {
				return "", errors.New("content was altered")
			}

			return "https://files.example.com/" + key, nil
		})

	doc, err := srv.Upload(ctx, stored.ID.String(), "idCard", &usecase.DocumentFile{
		Filename:    "scan.PNG",
		ContentType: "application/octet-stream",
		Size:        int64(len(pngHeader)),
		Content:     bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentIDCard, doc.Kind)
	assert.True(t, strings.HasPrefix(doc.URL, "https://files.example.com/inquiries/"))
}

func TestDocumentService_Upload_Rejections(t *testing.T) {
	stored := newStoredInquiry(entity.StatusScheduled)
	completed := newStoredInquiry(entity.StatusReservationComplete)

	tests := []struct {
		name    string
		rawID   string
		kind    string
		file    *usecase.DocumentFile
		found   *entity.Inquiry
		wantErr error
	}{
		{
			name:    "bad id",
			rawID:   "abc",
			kind:    "idCard",
			wantErr: domainerrors.ErrInvalidInquiryID,
		},
		{
			name:    "unknown kind",
			rawID:   stored.ID.String(),
			kind:    "passport",
			wantErr: domainerrors.ErrInvalidDocumentKind,
		},
		{
			name:    "completed reservation",
			rawID:   completed.ID.String(),
			kind:    "idCard",
			file:    &usecase.DocumentFile{Size: 4, Content: strings.NewReader("%PDF")},
			found:   completed,
			wantErr: domainerrors.ErrReservationCompleted,
		},
		{
			name:    "too large",
			rawID:   stored.ID.String(),
			kind:    "paymentCard",
			file:    &usecase.DocumentFile{Size: 2048, ContentType: "image/png", Content: bytes.NewReader(pngHeader)},
			found:   stored,
			wantErr: domainerrors.ErrDocumentTooLarge,
		},
		{
			name:    "unsupported type",
			rawID:   stored.ID.String(),
			kind:    "businessLicense",
			file:    &usecase.DocumentFile{Size: 5, ContentType: "text/plain; charset=utf-8", Content: strings.NewReader("hello")},
			found:   stored,
			wantErr: domainerrors.ErrUnsupportedDocumentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, inquiryRepo, _ := createTestDocumentService(t)
			ctx := context.Background()

			if tt.found != nil {
				inquiryRepo.EXPECT().FindByID(ctx, tt.found.ID).Return(tt.found, nil)
			}

			file := tt.file
			if file == nil {
				file = &usecase.DocumentFile{Size: 1, Content: strings.NewReader("x")}
			}

			_, err := srv.Upload(ctx, tt.rawID, tt.kind, file)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentService_Upload_StorageFailure(t *testing.T) {
	srv, inquiryRepo, storage := createTestDocumentService(t)
	ctx := context.Background()
	stored := newStoredInquiry(entity.StatusNew)

	inquiryRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	storage.EXPECT().Upload(ctx, mock.Anything, "application/pdf", mock.Anything).Return("", errors.New("bucket gone"))

	_, err := srv.Upload(ctx, stored.ID.String(), "idCard", &usecase.DocumentFile{
		Filename:    "id.pdf",
		ContentType: "application/pdf",
		Size:        8,
		Content:     strings.NewReader("%PDF-1.4"),
	})
	require.ErrorIs(t, err, domainerrors.ErrDocumentUploadFailed)
}
