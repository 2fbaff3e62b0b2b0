// Package dateutils parses record timestamps and models the inclusive date window
// the pipeline filters on.
package dateutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layouts accepted for recorded_at_local values.
const (
	DateLayoutISO         = "2006-01-02"
	DateLayoutFull        = "2006-01-02 15:04:05"
	DateLayoutLocal       = "2006-01-02T15:04:05"
	DateLayoutLocalMillis = "2006-01-02T15:04:05.000"
)

// zonedLayouts carry their own offset; localLayouts are read in the caller's location.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
	}
	localLayouts = []string{
		DateLayoutLocalMillis,
		DateLayoutLocal,
		DateLayoutFull,
		DateLayoutISO,
	}
)

// ErrEmptyTimestamp is returned by ParseTimestamp for blank input.
var ErrEmptyTimestamp = errors.New("empty timestamp")

var whitespace = regexp.MustCompile(`\s+`)

// ParseTimestamp parses a record timestamp into an absolute time.
// Values without an offset are interpreted in loc (time.Local when nil).
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	cleaned := CleanDateString(value)
	if cleaned == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, cleaned, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", value)
}

// CleanDateString trims and collapses whitespace
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// LoadLocation resolves a configured time zone name. "" and "Local" mean the
// process location.
func LoadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "Local", "local":
		return time.Local, nil
	case "UTC", "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
