package telemetry

import (
	"context"

	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
)

// Stats is the dashboard's headline aggregate.
type Stats struct {
	TotalSensors    int64 `json:"totalSensors"`
	TotalDataPoints int64 `json:"totalDataPoints"`
	ActiveAlerts    int64 `json:"activeAlerts"`
}

// StatsService computes the three aggregates. Each count is an independent
// read; no cross-query transaction.
type StatsService struct {
	readings *ReadingRepository
	alerts   *AlertRepository
}

// NewStatsService builds a stats service over the two repositories.
func NewStatsService(readings *ReadingRepository, alerts *AlertRepository) *StatsService {
	return &StatsService{readings: readings, alerts: alerts}
}

// Collect gathers the current stats snapshot.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	totalSensors, err := s.readings.CountDistinctSensors(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count sensors")
	}
	totalDataPoints, err := s.readings.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count readings")
	}
	activeAlerts, err := s.alerts.CountUnresolved(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count alerts")
	}

	return &Stats{
		TotalSensors:    totalSensors,
		TotalDataPoints: totalDataPoints,
		ActiveAlerts:    activeAlerts,
	}, nil
}
