package dashboard

import (
	"strings"
	"time"

	"github.com/agrisense-io/agrisense-backend/pkg/db/models"
)

// Counts groups readings by their health classification.
type Counts struct {
	Total     int `json:"total"`
	Normal    int `json:"normal"`
	Attention int `json:"attention"`
	Critical  int `json:"critical"`
}

// PieSlice is one non-zero category for the status pie chart.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// MoisturePoint is one bar in the soil moisture chart.
type MoisturePoint struct {
	SensorID    string    `json:"sensor_id"`
	SoilMoist   float64   `json:"soil_moist"`
	LastUpdated time.Time `json:"last_updated"`
}

// Summary is the server-computed dashboard payload.
type Summary struct {
	Counts       Counts                 `json:"counts"`
	Pie          []PieSlice             `json:"pie"`
	Moisture     []MoisturePoint        `json:"moisture"`
	ActiveAlerts []models.SensorReading `json:"active_alerts"`
}

// Summarize classifies the readings and assembles the dashboard payload.
// Deterministic for a given input slice; input order is preserved.
func Summarize(readings []models.SensorReading) Summary {
	counts := Counts{Total: len(readings)}
	moisture := make([]MoisturePoint, 0, len(readings))
	activeAlerts := make([]models.SensorReading, 0)

	for _, reading := range readings {
		if isRisky(reading.DiseaseRisk) {
			counts.Critical++
		}
		if isSafe(reading.StatusColor) {
			counts.Normal++
		} else {
			counts.Attention++
			activeAlerts = append(activeAlerts, reading)
		}

		moisture = append(moisture, MoisturePoint{
			SensorID:    reading.SensorID,
			SoilMoist:   reading.SoilMoist,
			LastUpdated: reading.LastUpdated,
		})
	}

	pie := make([]PieSlice, 0, 3)
	for _, slice := range []PieSlice{
		{Name: "Normal", Value: counts.Normal, Color: "#4CAF50"},
		{Name: "Attention", Value: counts.Attention, Color: "#FF9800"},
		{Name: "Critical", Value: counts.Critical, Color: "#F44336"},
	} {
		if slice.Value > 0 {
			pie = append(pie, slice)
		}
	}

	return Summary{
		Counts:       counts,
		Pie:          pie,
		Moisture:     moisture,
		ActiveAlerts: activeAlerts,
	}
}

// isRisky treats every disease-risk label as critical except the known-benign
// set. Unknown labels count as risky.
func isRisky(diseaseRisk string) bool {
	switch strings.ToUpper(diseaseRisk) {
	case "LOW RISK", "NORMAL", "NONE", "":
		return false
	}
	return true
}

// isSafe matches the dashboard's color heuristic.
func isSafe(statusColor string) bool {
	color := strings.ToLower(statusColor)
	return strings.Contains(color, "#388e3c") || strings.Contains(color, "green")
}
