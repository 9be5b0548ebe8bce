// Package timeparse holds the boundary parsers for user-entered values.
// Everything here validates before data reaches the domain; the domain
// never sees a malformed time or weight string.
package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const kgToLbs = 2.20462

// TimeOfDay parses "HH:MM" into minutes past midnight.
func TimeOfDay(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("time must be in HH:MM format (e.g. 06:30), got %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time must be in HH:MM format (e.g. 06:30), got %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time must be in HH:MM format (e.g. 06:30), got %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", value)
	}
	return hour*60 + minute, nil
}

// FormatTimeOfDay renders minutes past midnight as "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Set is one weight entry parsed from shorthand, always in pounds.
type Set struct {
	WeightLbs float64
	Reps      int
}

// Sets parses weight shorthand like "135x5, 185x5, 225x3" or "90kgx5".
// Kilogram entries are converted to pounds and rounded to two decimals.
func Sets(value string) ([]Set, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	var sets []Set
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(strings.ToLower(entry))
		if entry == "" {
			continue
		}
		inKg := strings.Contains(entry, "kg")
		entry = strings.ReplaceAll(entry, "kg", "")
		parts := strings.Split(entry, "x")
		if len(parts) != 2 {
			return nil, setError(entry)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, setError(entry)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, setError(entry)
		}
		if inKg {
			weight = math.Round(weight*kgToLbs*100) / 100
		}
		sets = append(sets, Set{WeightLbs: weight, Reps: reps})
	}
	return sets, nil
}

func setError(entry string) error {
	return fmt.Errorf("invalid weight format %q: use 'weightxreps' or 'weightkgxreps' (e.g. '170x5' or '90kgx5')", entry)
}

// Day parses a free-form calendar date as "2006-01-02".
func Day(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format, got %q", value)
	}
	return t, nil
}
