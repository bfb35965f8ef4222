package models

import (
	"time"

	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert is a condition raised against a sensor. Resolved stays false until
// explicitly cleared.
type Alert struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	SensorID    string              `gorm:"column:sensor_id;index" json:"sensor_id"`
	Severity    enums.AlertSeverity `gorm:"column:severity;not null;index" json:"severity"`
	Message     string              `gorm:"column:message;not null" json:"message"`
	Description string              `gorm:"column:description" json:"description,omitempty"`
	Resolved    bool                `gorm:"column:resolved;not null;default:false;index" json:"resolved"`
	Timestamp   time.Time           `gorm:"column:timestamp;not null;index" json:"timestamp"`
}

func (a *Alert) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
