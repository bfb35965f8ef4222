package telemetry

import (
	"context"

	"github.com/agrisense-io/agrisense-backend/pkg/db/models"
	"gorm.io/gorm"
)

// AlertRepository exposes alert persistence operations.
type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository constructs an alert repo bound to the provided GORM DB.
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// List returns alerts matching the filter, newest first.
func (r *AlertRepository) List(ctx context.Context, filter AlertFilter) ([]models.Alert, error) {
	query := r.db.WithContext(ctx).Model(&models.Alert{})

	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.Resolved != nil {
		query = query.Where("resolved = ?", *filter.Resolved)
	}

	query = query.Order("timestamp DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(normalizeSkip(filter.Skip))

	var rows []models.Alert
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountUnresolved returns the number of alerts still open.
func (r *AlertRepository) CountUnresolved(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("resolved = ?", false).
		Count(&count).Error
	return count, err
}
