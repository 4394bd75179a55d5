package impl

import (
	"bufio"
	"context"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/reservation"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"
	"funnel/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadBytes = 10 << 20
	sniffLen              = 3072
)

var defaultAllowedContentTypes = []string{"image/jpeg", "image/png", "image/heic", "application/pdf"}

type documentService struct {
	inquiryRepo    repository.InquiryRepository
	storage        service.DocumentStorage
	maxUploadBytes int64
	allowedTypes   []string
	logger         *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	InquiryRepo repository.InquiryRepository
	Storage     service.DocumentStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	srv := &documentService{
		inquiryRepo:    params.InquiryRepo,
		storage:        params.Storage,
		maxUploadBytes: defaultMaxUploadBytes,
		allowedTypes:   defaultAllowedContentTypes,
		logger:         params.Logger,
	}
	if params.Config != nil && params.Config.Storage != nil {
		if params.Config.Storage.MaxUploadBytes > 0 {
			srv.maxUploadBytes = params.Config.Storage.MaxUploadBytes
		}
		if len(params.Config.Storage.AllowedContentTypes) > 0 {
			srv.allowedTypes = params.Config.Storage.AllowedContentTypes
		}
	}

	return srv
}

// Upload stores a document for an inquiry that still accepts reservation changes
func (srv *documentService) Upload(ctx context.Context, rawID, kind string, file *usecase.DocumentFile) (*usecase.UploadedDocument, error) {
	id, err := parseInquiryID(rawID)
	if err != nil {
		return nil, err
	}

	docKind := entity.DocumentKind(kind)
	if !docKind.IsValid() {
		return nil, domainerrors.ErrInvalidDocumentKind
	}
	if file == nil || file.Content == nil {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "file", Message: "파일을 선택해주세요."})
	}

	inquiry, err := srv.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapInquiryError(err)
	}
	if err := reservation.Guard(inquiry); err != nil {
		return nil, err
	}

	if file.Size > srv.maxUploadBytes {
		return nil, domainerrors.ErrDocumentTooLarge.WithDetails("limit " + util.FormatBytes(srv.maxUploadBytes))
	}

	reader := bufio.NewReaderSize(file.Content, sniffLen)
	contentType := srv.resolveContentType(file.ContentType, reader)
	if !slices.Contains(srv.allowedTypes, contentType) {
		return nil, domainerrors.ErrUnsupportedDocumentType.WithDetails(contentType)
	}

	key := documentKey(id, docKind, file.Filename, contentType)
	url, err := srv.storage.Upload(ctx, key, contentType, reader)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to store document",
			slog.String("inquiry_id", id.String()),
			slog.String("kind", kind),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrDocumentUploadFailed
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Document stored",
		slog.String("inquiry_id", id.String()),
		slog.String("kind", kind),
		slog.String("size", util.FormatBytes(file.Size)),
	)

	return &usecase.UploadedDocument{Kind: docKind, URL: url}, nil
}

// resolveContentType trusts the declared type unless it is missing or generic, in which
// case the first bytes are sniffed.
func (srv *documentService) resolveContentType(declared string, r *bufio.Reader) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return strings.ToLower(mediaType)
		}
	}

	head, err := r.Peek(sniffLen)
	if err != nil && len(head) == 0 {
		return "application/octet-stream"
	}
	mediaType, _, _ := mime.ParseMediaType(mimetype.Detect(head).String())

	return mediaType
}

func documentKey(id uuid.UUID, kind entity.DocumentKind, filename, contentType string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		if m := mimetype.Lookup(contentType); m != nil {
			ext = m.Extension()
		}
	}

	return path.Join("inquiries", id.String(), string(kind)+"-"+uuid.NewString()+ext)
}
