package telemetry

import (
	"time"

	"github.com/agrisense-io/agrisense-backend/pkg/enums"
)

const (
	// DefaultLimit matches the dashboard client's page size.
	DefaultLimit = 50
	// MaxLimit bounds a single read.
	MaxLimit = 500
)

// ReadingFilter narrows a sensor reading query. Zero values constrain
// nothing; filters combine with AND.
type ReadingFilter struct {
	SensorID   string
	SensorType string
	Crop       string

	// The date range is inclusive and applies only when both bounds are
	// set. A single bound is ignored, matching the dashboard's behavior.
	StartDate *time.Time
	EndDate   *time.Time

	Limit int
	Skip  int
}

// AlertFilter narrows an alert query.
type AlertFilter struct {
	Severity enums.AlertSeverity
	Resolved *bool

	Limit int
	Skip  int
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func normalizeSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}
