package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/agrisense-io/agrisense-backend/pkg/config"
	"github.com/agrisense-io/agrisense-backend/pkg/db"
	"github.com/agrisense-io/agrisense-backend/pkg/db/models"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	"github.com/agrisense-io/agrisense-backend/pkg/logger"
	"github.com/agrisense-io/agrisense-backend/pkg/security"
)

const (
	seedPassword = "password123"
	seedSensor   = "SENSOR_001"
	seedSamples  = 50
)

// Demo data for local development. Wipes all three tables before inserting,
// so never point this at a real database.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to seed a production database", fmt.Errorf("app env is %q", cfg.App.Env))
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	conn := dbClient.DB()
	logg.Info(ctx, "seeding database")

	wipe := conn.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{&models.Alert{}, &models.SensorReading{}, &models.User{}} {
		if err := wipe.Delete(model).Error; err != nil {
			logg.Error(ctx, "failed to clear table", err)
			os.Exit(1)
		}
	}

	passwordHash, err := security.HashPassword(seedPassword, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash seed password", err)
		os.Exit(1)
	}

	seedUsers := []models.User{
		{Name: "farmer_john", Email: "farmer_john@agrisense.com", PasswordHash: passwordHash, Role: enums.UserRoleFarmer},
		{Name: "researcher_jane", Email: "researcher_jane@agrisense.com", PasswordHash: passwordHash, Role: enums.UserRoleResearcher},
	}
	for i := range seedUsers {
		if err := conn.Create(&seedUsers[i]).Error; err != nil {
			logg.Error(ctx, "failed to create seed user", err)
			os.Exit(1)
		}
	}

	now := time.Now().UTC()
	readings := make([]models.SensorReading, 0, seedSamples)
	for i := 0; i < seedSamples; i++ {
		readings = append(readings, sampleReading(now.Add(-time.Duration(i)*time.Hour)))
	}

	// Oldest first so insertion order matches the timeline.
	for i, j := 0, len(readings)-1; i < j; i, j = i+1, j-1 {
		readings[i], readings[j] = readings[j], readings[i]
	}
	if err := conn.Create(&readings).Error; err != nil {
		logg.Error(ctx, "failed to insert sensor readings", err)
		os.Exit(1)
	}

	alert := models.Alert{
		SensorID:  seedSensor,
		Severity:  enums.AlertSeverityHigh,
		Message:   "High Disease Risk Detected",
		Timestamp: now,
	}
	if err := conn.Create(&alert).Error; err != nil {
		logg.Error(ctx, "failed to insert alert", err)
		os.Exit(1)
	}

	logg.Info(logg.WithFields(ctx, map[string]any{
		"users":    len(seedUsers),
		"readings": len(readings),
		"alerts":   1,
	}), "database seeded")
}

func sampleReading(at time.Time) models.SensorReading {
	risk := "Low Risk"
	color := "green"
	switch rand.Intn(3) {
	case 1:
		risk = "Moderate"
		color = "#FF9800"
	case 2:
		risk = "High"
		color = "red"
	}

	advisory := "Monitor moisture levels"
	if risk == "High" {
		advisory = "Apply Fungicide immediately"
	}

	rainy := rand.Float64() > 0.8
	totalRain := 0.0
	if rainy {
		totalRain = round1(rand.Float64() * 50)
	}

	return models.SensorReading{
		SensorID:         seedSensor,
		SensorType:       "soil",
		CropType:         "wheat",
		SoilTemp:         round1(15 + rand.Float64()*10),
		SoilMoist:        round1(30 + rand.Float64()*40),
		SoilPH:           round1(5.5 + rand.Float64()*2),
		AvAirTemp:        round1(20 + rand.Float64()*15),
		AvAirHumid:       round1(40 + rand.Float64()*30),
		MaxWind:          round1(5 + rand.Float64()*20),
		TotalRain:        totalRain,
		AvgLight:         float64(200 + rand.Intn(500)),
		IrrigationStatus: pick("ON", "OFF"),
		DiseaseRisk:      risk,
		FarmAdvisory:     advisory,
		PlotSummary:      "Vegetative Growth Stage",
		StatusColor:      color,
		LastUpdated:      at,
	}
}

func pick(a, b string) string {
	if rand.Float64() > 0.5 {
		return a
	}
	return b
}

func round1(v float64) float64 {
	return float64(int(v*10)) / 10
}
