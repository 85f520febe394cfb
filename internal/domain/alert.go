package domain

import "time"

// Severity is the NWS alert severity scale.
type Severity string

const (
	SeverityExtreme  Severity = "Extreme"
	SeveritySevere   Severity = "Severe"
	SeverityModerate Severity = "Moderate"
	SeverityMinor    Severity = "Minor"
	SeverityUnknown  Severity = "Unknown"
)

// ParseSeverity maps an upstream severity string onto the known scale.
// Unrecognized values degrade to SeverityUnknown rather than failing.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityExtreme, SeveritySevere, SeverityModerate, SeverityMinor:
		return Severity(s)
	default:
		return SeverityUnknown
	}
}

// AlertRecord is one active alert for a jurisdiction, reduced to the fields
// the condition composer consumes.
type AlertRecord struct {
	Event           string
	Severity        Severity
	AreaDescription string
	ExpiresAt       time.Time
}

// IsActive reports whether the alert expires strictly after now.
func (a AlertRecord) IsActive(now time.Time) bool {
	return a.ExpiresAt.After(now)
}
