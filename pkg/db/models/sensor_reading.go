package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SensorReading is one telemetry sample from a field sensor. Readings are
// written by the ingestion pipeline or the seeder and are read-only from the
// API's perspective, so the model doubles as the transport shape.
type SensorReading struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SensorID   string    `gorm:"column:sensor_id;not null;index" json:"sensor_id"`
	SensorType string    `gorm:"column:sensor_type" json:"sensor_type,omitempty"`
	CropType   string    `gorm:"column:crop_type;index" json:"crop_type,omitempty"`

	SoilTemp   float64 `gorm:"column:soil_temp" json:"soil_temp"`
	SoilMoist  float64 `gorm:"column:soil_moist" json:"soil_moist"`
	SoilPH     float64 `gorm:"column:soil_ph" json:"soil_ph"`
	AvAirTemp  float64 `gorm:"column:av_air_temp" json:"av_air_temp"`
	AvAirHumid float64 `gorm:"column:av_air_humid" json:"av_air_humid"`
	MaxWind    float64 `gorm:"column:max_wind" json:"max_wind"`
	TotalRain  float64 `gorm:"column:total_rain" json:"total_rain"`
	AvgLight   float64 `gorm:"column:avg_light" json:"avg_light"`

	IrrigationStatus string `gorm:"column:irrigation_status" json:"irrigation_status"`
	DiseaseRisk      string `gorm:"column:disease_risk" json:"disease_risk"`
	FarmAdvisory     string `gorm:"column:farm_advisory" json:"farm_advisory"`
	AIAdvice         string `gorm:"column:ai_advice" json:"ai_advice,omitempty"`
	PlotSummary      string `gorm:"column:plot_summary" json:"plot_summary"`
	StatusColor      string `gorm:"column:status_color" json:"status_color"`

	LastUpdated time.Time `gorm:"column:last_updated;not null;index" json:"last_updated"`
}

func (s *SensorReading) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
