package repository

import (
	"context"

	"atmos/internal/models"

	"gorm.io/gorm"
)

// WeatherRepository defines persistence operations for weather records.
// The collection is append-only: records are never updated and only
// deletable in bulk.
type WeatherRepository interface {
	Create(ctx context.Context, record *models.WeatherRecord) error
	ListByUser(ctx context.Context, userID uint) ([]models.WeatherRecord, error)
	DeleteAll(ctx context.Context) error
}

type weatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository returns a new WeatherRepository implementation.
func NewWeatherRepository(db *gorm.DB) WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) Create(ctx context.Context, record *models.WeatherRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByUser returns the user's lookups in insertion order. An empty slice is
// not an error; the caller decides how to report a user with no history.
func (r *weatherRepository) ListByUser(ctx context.Context, userID uint) ([]models.WeatherRecord, error) {
	var records []models.WeatherRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

func (r *weatherRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.WeatherRecord{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
