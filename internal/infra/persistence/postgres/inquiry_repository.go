package postgres

import (
	"context"
	"encoding/json"
	"time"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/reservation"
	"funnel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inquiryRepository implements the repository.InquiryRepository interface.
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{
		db: db,
	}
}

// Create persists a new inquiry.
func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiryM := fromInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "inquiry violates a column constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	inquiry.ID = inquiryM.ID
	inquiry.Version = inquiryM.Version
	inquiry.CreatedAt = inquiryM.CreatedAt
	inquiry.UpdatedAt = inquiryM.UpdatedAt

	return nil
}

// FindByID retrieves an inquiry by its unique ID.
func (repo *inquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an inquiry with SELECT ... FOR UPDATE.
func (repo *inquiryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *inquiryRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Inquiry, error) {
	var inquiryM model.InquiryModel

	if err := db.Where("id = ?", id).First(&inquiryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inquiry by ID")
	}

	return toInquiryDomain(&inquiryM), nil
}

// ApplyChanges writes the changed columns guarded by the version the caller read.
// Documents are merged with the jsonb || operator so keys stored by a concurrent
// writer are never dropped.
func (repo *inquiryRepository) ApplyChanges(ctx context.Context, id uuid.UUID, version int64, changes *reservation.Changes) error {
	updates, err := changeColumns(changes)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	updates["version"] = gorm.Expr("version + 1")
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inquiry")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.InquiryModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check inquiry existence")
	}
	if count == 0 {
		return repository.ErrInquiryNotFound
	}

	return repository.ErrVersionConflict
}

func changeColumns(c *reservation.Changes) (map[string]any, error) {
	updates := map[string]any{}
	if c == nil {
		return updates, nil
	}

	if c.InquiryType != nil {
		updates["inquiry_type"] = string(*c.InquiryType)
	}
	if c.ReservationDate != nil {
		updates["reservation_date"] = datatypes.Date(c.ReservationDate.Time())
	}
	if c.ReservationTimeSlot != nil {
		updates["reservation_time_slot"] = string(*c.ReservationTimeSlot)
	}
	if c.OutdoorCount != nil {
		updates["outdoor_count"] = *c.OutdoorCount
	}
	if c.IndoorCount != nil {
		updates["indoor_count"] = *c.IndoorCount
	}
	if c.InstallCount != nil {
		updates["install_count"] = *c.InstallCount
	}
	if c.Address != nil {
		updates["address"] = *c.Address
	}
	if c.AddressDetail != nil {
		updates["address_detail"] = *c.AddressDetail
	}
	if c.Zonecode != nil {
		updates["zonecode"] = *c.Zonecode
	}
	if c.InstallLocation != nil {
		updates["install_location"] = *c.InstallLocation
	}
	if len(c.Documents) > 0 {
		patch, err := json.Marshal(c.Documents)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode documents")
		}
		updates["documents"] = gorm.Expr("COALESCE(documents, '{}'::jsonb) || ?::jsonb", string(patch))
	}
	if c.DocumentsSubmitted != nil {
		updates["documents_submitted"] = *c.DocumentsSubmitted
	}
	if c.Status != nil {
		updates["status"] = string(*c.Status)
	}

	return updates, nil
}

// FindLatestByPhone returns the newest inquiry for a normalized phone number.
func (repo *inquiryRepository) FindLatestByPhone(ctx context.Context, phoneNumber string) (*entity.Inquiry, error) {
	var inquiryM model.InquiryModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Order("created_at DESC, id DESC").
		First(&inquiryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inquiry by phone")
	}

	return toInquiryDomain(&inquiryM), nil
}

// List returns a page of inquiries, newest first, with the total matching count.
func (repo *inquiryRepository) List(ctx context.Context, filter repository.InquiryFilter) ([]*entity.Inquiry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.InquiryModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.MarketerCode != "" {
		query = query.Where("marketer_code = ?", filter.MarketerCode)
	}
	if filter.PhoneNumber != "" {
		query = query.Where("phone_number = ?", filter.PhoneNumber)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count inquiries")
	}

	var inquiryModels []*model.InquiryModel
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&inquiryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list inquiries")
	}

	inquiries := make([]*entity.Inquiry, 0, len(inquiryModels))
	for _, m := range inquiryModels {
		inquiries = append(inquiries, toInquiryDomain(m))
	}

	return inquiries, total, nil
}

// --- Mapper Functions ---

func toInquiryDomain(data *model.InquiryModel) *entity.Inquiry {
	if data == nil {
		return nil
	}

	inquiry := &entity.Inquiry{
		ID:                 data.ID,
		PhoneNumber:        data.PhoneNumber,
		InquiryType:        entity.InquiryType(data.InquiryType),
		MarketerCode:       data.MarketerCode,
		LandingTemplate:    data.LandingTemplate,
		LandingSubtype:     data.LandingSubtype,
		ReferrerURL:        data.ReferrerURL,
		PrivacyConsent:     data.PrivacyConsent,
		InstallLocation:    data.InstallLocation,
		Address:            data.Address,
		AddressDetail:      data.AddressDetail,
		Zonecode:           data.Zonecode,
		InstallCount:       data.InstallCount,
		OutdoorCount:       data.OutdoorCount,
		IndoorCount:        data.IndoorCount,
		Documents:          toDocumentsDomain(data.Documents),
		DocumentsSubmitted: data.DocumentsSubmitted,
		Status:             entity.InquiryStatus(data.Status),
		Version:            data.Version,
		SubmittedAt:        data.SubmittedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
	if data.ReservationDate != nil {
		d := entity.DateOf(time.Time(*data.ReservationDate))
		inquiry.ReservationDate = &d
	}
	if data.ReservationTimeSlot != nil {
		slot := entity.TimeSlot(*data.ReservationTimeSlot)
		inquiry.ReservationTimeSlot = &slot
	}

	return inquiry
}

func fromInquiryDomain(data *entity.Inquiry) *model.InquiryModel {
	if data == nil {
		return nil
	}

	inquiryM := &model.InquiryModel{
		ID:                 data.ID,
		PhoneNumber:        data.PhoneNumber,
		InquiryType:        string(data.InquiryType),
		MarketerCode:       data.MarketerCode,
		LandingTemplate:    data.LandingTemplate,
		LandingSubtype:     data.LandingSubtype,
		ReferrerURL:        data.ReferrerURL,
		PrivacyConsent:     data.PrivacyConsent,
		InstallLocation:    data.InstallLocation,
		Address:            data.Address,
		AddressDetail:      data.AddressDetail,
		Zonecode:           data.Zonecode,
		InstallCount:       data.InstallCount,
		OutdoorCount:       data.OutdoorCount,
		IndoorCount:        data.IndoorCount,
		Documents:          fromDocumentsDomain(data.Documents),
		DocumentsSubmitted: data.DocumentsSubmitted,
		Status:             string(data.Status),
		Version:            data.Version,
		SubmittedAt:        data.SubmittedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
	if inquiryM.Version == 0 {
		inquiryM.Version = 1
	}
	if data.ReservationDate != nil {
		d := datatypes.Date(data.ReservationDate.Time())
		inquiryM.ReservationDate = &d
	}
	if data.ReservationTimeSlot != nil {
		slot := string(*data.ReservationTimeSlot)
		inquiryM.ReservationTimeSlot = &slot
	}

	return inquiryM
}

func toDocumentsDomain(data datatypes.JSONMap) entity.Documents {
	docs := make(entity.Documents, len(data))
	for k, v := range data {
		if ref, ok := v.(string); ok {
			docs[entity.DocumentKind(k)] = ref
		}
	}

	return docs
}

func fromDocumentsDomain(docs entity.Documents) datatypes.JSONMap {
	data := make(datatypes.JSONMap, len(docs))
	for k, v := range docs {
		data[string(k)] = v
	}

	return data
}
