package postgres

import (
	"context"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// FindByCode retrieves a partner by referral code.
func (repo *partnerRepository) FindByCode(ctx context.Context, code string) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by code")
	}

	return toPartnerDomain(&partnerM), nil
}

func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		Phone:     data.Phone,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
