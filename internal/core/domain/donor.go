package domain

import (
	"math"
	"strings"
	"time"
)

// Registration thresholds
const (
	MinDonorAge      = 18
	MinDonorWeightKg = 50
)

// BloodGroups lists the accepted ABO/Rh groups
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Age returns the number of whole years between dob and today. The year
// difference is reduced by one while today's (month, day) is still before
// the birthday's.
func Age(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// IsFiniteWeight rejects NaN and infinities, which compare false against any threshold
func IsFiniteWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0)
}

// NormalizeBloodGroup upper-cases and validates a blood group
func NormalizeBloodGroup(group string) (string, bool) {
	g := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(group), " ", ""))
	for _, known := range BloodGroups {
		if g == known {
			return g, true
		}
	}
	return "", false
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC3339 timestamp.
// Only the calendar day of timestamps is kept.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
