package postgres

import (
	"context"
	"time"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blockedDateRepository implements the repository.BlockedDateRepository interface.
type blockedDateRepository struct {
	db *gorm.DB
}

// NewBlockedDateRepository is the constructor for blockedDateRepository.
func NewBlockedDateRepository(db *gorm.DB) repository.BlockedDateRepository {
	return &blockedDateRepository{
		db: db,
	}
}

// FindAll returns every override ordered by date.
func (repo *blockedDateRepository) FindAll(ctx context.Context) ([]*entity.BlockedDate, error) {
	var rows []*model.BlockedDateModel

	if err := repo.db.WithContext(ctx).Order("date ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blocked dates")
	}

	return toBlockedDatesDomain(rows), nil
}

// FindBetween returns overrides with from <= date <= to.
func (repo *blockedDateRepository) FindBetween(ctx context.Context, from, to entity.Date) ([]*entity.BlockedDate, error) {
	var rows []*model.BlockedDateModel

	if err := repo.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", datatypes.Date(from.Time()), datatypes.Date(to.Time())).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blocked dates in range")
	}

	return toBlockedDatesDomain(rows), nil
}

// FindByDate returns the override for a single date.
func (repo *blockedDateRepository) FindByDate(ctx context.Context, date entity.Date) (*entity.BlockedDate, error) {
	var row model.BlockedDateModel

	if err := repo.db.WithContext(ctx).
		Where("date = ?", datatypes.Date(date.Time())).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlockedDateNotFound
		}

		return nil, errors.Wrap(err, "failed to find blocked date")
	}

	return toBlockedDateDomain(&row), nil
}

// Upsert creates or replaces the override for a date.
func (repo *blockedDateRepository) Upsert(ctx context.Context, blocked *entity.BlockedDate) error {
	row := &model.BlockedDateModel{
		Date:      datatypes.Date(blocked.Date.Time()),
		IsBlocked: blocked.IsBlocked,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_blocked", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert blocked date")
	}

	blocked.UpdatedAt = row.UpdatedAt

	return nil
}

// Delete removes the override for a date.
func (repo *blockedDateRepository) Delete(ctx context.Context, date entity.Date) error {
	result := repo.db.WithContext(ctx).
		Where("date = ?", datatypes.Date(date.Time())).
		Delete(&model.BlockedDateModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blocked date")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlockedDateNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBlockedDateDomain(data *model.BlockedDateModel) *entity.BlockedDate {
	if data == nil {
		return nil
	}

	return &entity.BlockedDate{
		Date:      entity.DateOf(time.Time(data.Date)),
		IsBlocked: data.IsBlocked,
		UpdatedAt: data.UpdatedAt,
	}
}

func toBlockedDatesDomain(rows []*model.BlockedDateModel) []*entity.BlockedDate {
	result := make([]*entity.BlockedDate, 0, len(rows))
	for _, row := range rows {
		result = append(result, toBlockedDateDomain(row))
	}

	return result
}
