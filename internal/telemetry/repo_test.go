package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/agrisense-io/agrisense-backend/pkg/db/models"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.SensorReading{}, &models.Alert{}))
	return conn
}

func seedReadings(t *testing.T, db *gorm.DB) []models.SensorReading {
	t.Helper()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.SensorReading{
		{SensorID: "SENSOR_001", SensorType: "soil", CropType: "wheat", SoilMoist: 40, LastUpdated: base},
		{SensorID: "SENSOR_001", SensorType: "soil", CropType: "wheat", SoilMoist: 42, LastUpdated: base.Add(1 * time.Hour)},
		{SensorID: "SENSOR_002", SensorType: "weather", CropType: "corn", SoilMoist: 31, LastUpdated: base.Add(2 * time.Hour)},
		{SensorID: "SENSOR_002", SensorType: "weather", CropType: "corn", SoilMoist: 30, LastUpdated: base.Add(3 * time.Hour)},
		{SensorID: "SENSOR_003", SensorType: "soil", CropType: "wheat", SoilMoist: 55, LastUpdated: base.Add(4 * time.Hour)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
	return rows
}

func TestReadingListSortsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)
	repo := NewReadingRepository(db)

	rows, err := repo.List(context.Background(), ReadingFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].LastUpdated.After(rows[i-1].LastUpdated), "expected descending order at index %d", i)
	}
}

func TestReadingListFiltersBySensorAndType(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)
	repo := NewReadingRepository(db)

	rows, err := repo.List(context.Background(), ReadingFilter{SensorID: "SENSOR_001"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "SENSOR_001", row.SensorID)
	}

	rows, err = repo.List(context.Background(), ReadingFilter{SensorType: "weather"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = repo.List(context.Background(), ReadingFilter{SensorID: "SENSOR_001", SensorType: "weather"})
	require.NoError(t, err)
	assert.Empty(t, rows, "conjunctive filters should intersect")
}

func TestReadingListLimitAndSkip(t *testing.T) {
	db := newTestDB(t)
	seeded := seedReadings(t, db)
	repo := NewReadingRepository(db)

	rows, err := repo.List(context.Background(), ReadingFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, seeded[4].SensorID, rows[0].SensorID)

	skipped, err := repo.List(context.Background(), ReadingFilter{Limit: 2, Skip: 2})
	require.NoError(t, err)
	require.Len(t, skipped, 2)
	assert.NotEqual(t, rows[0].ID, skipped[0].ID)
}

func TestReadingListDateRangeNeedsBothBounds(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)
	repo := NewReadingRepository(db)

	start := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

	rows, err := repo.List(context.Background(), ReadingFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Len(t, rows, 3, "range is inclusive on both ends")

	rows, err = repo.List(context.Background(), ReadingFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, rows, 5, "a single bound is ignored")
}

func TestReadingListFiltersByCrop(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)
	repo := NewReadingRepository(db)

	rows, err := repo.List(context.Background(), ReadingFilter{Crop: "corn"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "corn", row.CropType)
	}
}

func TestRecentReturnsNewestN(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)
	repo := NewReadingRepository(db)

	rows, err := repo.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "SENSOR_003", rows[0].SensorID)
}

func seedAlerts(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Alert{
		{SensorID: "SENSOR_001", Severity: enums.AlertSeverityHigh, Message: "Low soil moisture", Timestamp: base},
		{SensorID: "SENSOR_002", Severity: enums.AlertSeverityMedium, Message: "Wind gusts", Timestamp: base.Add(time.Hour)},
		{SensorID: "SENSOR_002", Severity: enums.AlertSeverityLow, Message: "Routine check", Resolved: true, Timestamp: base.Add(2 * time.Hour)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func TestAlertListFilters(t *testing.T) {
	db := newTestDB(t)
	seedAlerts(t, db)
	repo := NewAlertRepository(db)

	rows, err := repo.List(context.Background(), AlertFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Routine check", rows[0].Message, "newest first")

	rows, err = repo.List(context.Background(), AlertFilter{Severity: enums.AlertSeverityHigh})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Low soil moisture", rows[0].Message)

	resolved := true
	rows, err = repo.List(context.Background(), AlertFilter{Resolved: &resolved})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Resolved)

	unresolved := false
	rows, err = repo.List(context.Background(), AlertFilter{Resolved: &unresolved})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestStatsCollect(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)
	seedAlerts(t, db)

	svc := NewStatsService(NewReadingRepository(db), NewAlertRepository(db))
	stats, err := svc.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalSensors)
	assert.Equal(t, int64(5), stats.TotalDataPoints)
	assert.Equal(t, int64(2), stats.ActiveAlerts)
}
