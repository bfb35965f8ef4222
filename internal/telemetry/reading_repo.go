package telemetry

import (
	"context"

	"github.com/agrisense-io/agrisense-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ReadingRepository exposes sensor reading persistence operations. All reads
// sort most-recent-first on last_updated.
type ReadingRepository struct {
	db *gorm.DB
}

// NewReadingRepository constructs a reading repo bound to the provided GORM DB.
func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// List returns readings matching the filter, newest first.
func (r *ReadingRepository) List(ctx context.Context, filter ReadingFilter) ([]models.SensorReading, error) {
	query := r.db.WithContext(ctx).Model(&models.SensorReading{})

	if filter.SensorID != "" {
		query = query.Where("sensor_id = ?", filter.SensorID)
	}
	if filter.SensorType != "" {
		query = query.Where("sensor_type = ?", filter.SensorType)
	}
	if filter.Crop != "" {
		query = query.Where("crop_type = ?", filter.Crop)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("last_updated >= ? AND last_updated <= ?", *filter.StartDate, *filter.EndDate)
	}

	query = query.Order("last_updated DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(normalizeSkip(filter.Skip))

	var rows []models.SensorReading
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Recent returns the n newest readings, newest first.
func (r *ReadingRepository) Recent(ctx context.Context, n int) ([]models.SensorReading, error) {
	if n <= 0 {
		n = DefaultLimit
	}

	var rows []models.SensorReading
	err := r.db.WithContext(ctx).
		Order("last_updated DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountDistinctSensors returns the number of distinct sensor ids seen.
func (r *ReadingRepository) CountDistinctSensors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SensorReading{}).
		Distinct("sensor_id").
		Count(&count).Error
	return count, err
}

// Count returns the total number of readings.
func (r *ReadingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SensorReading{}).Count(&count).Error
	return count, err
}
