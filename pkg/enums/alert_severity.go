package enums

import (
	"fmt"
	"strings"
)

// AlertSeverity classifies how urgent an alert is. Lowercase values are the
// canonical form; older feeds used capitalized labels, so parsing folds case.
type AlertSeverity string

const (
	AlertSeverityLow    AlertSeverity = "low"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

var validAlertSeverities = []AlertSeverity{
	AlertSeverityLow,
	AlertSeverityMedium,
	AlertSeverityHigh,
}

// String implements fmt.Stringer.
func (s AlertSeverity) String() string {
	return string(s)
}

// IsValid reports whether the value is a known AlertSeverity.
func (s AlertSeverity) IsValid() bool {
	for _, candidate := range validAlertSeverities {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseAlertSeverity converts raw input into an AlertSeverity.
func ParseAlertSeverity(value string) (AlertSeverity, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validAlertSeverities {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid alert severity %q", value)
}
