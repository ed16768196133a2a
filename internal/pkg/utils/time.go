package utils

import (
	"doccare-service/internal/pkg/constvars"
	"time"
)

// ParseCalendarDate reads a calendar date in loc. Full RFC3339 timestamps are
// accepted and reduced to their date in loc.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	date, err := time.ParseInLocation(constvars.AppointmentDateLayout, value, loc)
	if err == nil {
		return date, nil
	}

	instant, rfcErr := time.Parse(time.RFC3339, value)
	if rfcErr != nil {
		return time.Time{}, err
	}
	return StartOfDay(instant.In(loc)), nil
}

// FormatAppointmentDate renders a stored appointment date for display, e.g.
// "Saturday, June 15, 2024". Values that do not parse are returned unchanged.
func FormatAppointmentDate(value string, loc *time.Location) string {
	date, err := ParseCalendarDate(value, loc)
	if err != nil {
		return value
	}
	return date.Format(constvars.AppointmentDateLabelLayout)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func LoadLocationOrLocal(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
