package slot

import (
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"slices"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// WeekendSlotResolver computes bookable weekend dates and validates a
// date/time selection. It holds no mutable state.
type WeekendSlotResolver struct {
	Location       *time.Location
	ScanWindowDays int
	Log            *zap.Logger
}

func NewWeekendSlotResolver(location *time.Location, logger *zap.Logger) contracts.SlotResolver {
	if location == nil {
		location = time.Local
	}
	return &WeekendSlotResolver{
		Location:       location,
		ScanWindowDays: constvars.WeekendScanWindowInDays,
		Log:            logger,
	}
}

// ComputeUpcomingWeekendDates returns the first Saturday and first Sunday
// strictly after the calendar day of referenceInstant, sorted ascending.
// It returns an empty slice if the scan window misses either day.
func (r *WeekendSlotResolver) ComputeUpcomingWeekendDates(referenceInstant time.Time) []models.AvailableDateEntry {
	today := utils.StartOfDay(referenceInstant.In(r.Location))

	found := make(map[time.Weekday]time.Time, len(weekendDays))
	for offset := 1; offset <= r.ScanWindowDays && len(found) < len(weekendDays); offset++ {
		// AddDate keeps midnight across DST changes.
		day := today.AddDate(0, 0, offset)
		if !isWeekend(day) {
			continue
		}
		if _, seen := found[day.Weekday()]; !seen {
			found[day.Weekday()] = day
		}
	}

	if len(found) < len(weekendDays) {
		err := exceptions.ErrNoWeekendDatesInScanWindow(r.ScanWindowDays, today.Format(constvars.AppointmentDateLayout))
		r.Log.Error("WeekendSlotResolver.ComputeUpcomingWeekendDates scan window exhausted",
			zap.Time(constvars.LoggingReferenceInstantKey, referenceInstant),
			zap.Error(err),
		)
		return []models.AvailableDateEntry{}
	}

	entries := make([]models.AvailableDateEntry, 0, len(found))
	for _, day := range found {
		entries = append(entries, models.AvailableDateEntry{
			Label: day.Format(constvars.AppointmentDateLabelLayout),
			Value: day.Format(constvars.AppointmentDateLayout),
			Date:  day,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// ValidateSelection checks presence first, then the weekday, then the slot.
func (r *WeekendSlotResolver) ValidateSelection(date, timeSlot string) (*models.ValidatedSlot, error) {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(timeSlot) == "" {
		return nil, exceptions.ErrMissingSelection()
	}

	day, err := utils.ParseCalendarDate(date, r.Location)
	if err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err, date)
	}
	if !isWeekend(day) {
		return nil, exceptions.ErrInvalidDateWeekday(day.Format(constvars.AppointmentDateLayout), day.Weekday().String())
	}

	if !slices.Contains(constvars.AppointmentTimeSlots, timeSlot) {
		return nil, exceptions.ErrInvalidTime(timeSlot)
	}

	return &models.ValidatedSlot{Date: day, Time: timeSlot}, nil
}

// EnsureUpcoming rejects a slot whose date is not after the calendar day of
// referenceInstant.
func (r *WeekendSlotResolver) EnsureUpcoming(slot *models.ValidatedSlot, referenceInstant time.Time) error {
	today := utils.StartOfDay(referenceInstant.In(r.Location))
	if !slot.Date.After(today) {
		return exceptions.ErrDateInPast(slot.DateValue(), today.Format(constvars.AppointmentDateLayout))
	}
	return nil
}

func (r *WeekendSlotResolver) TimeSlots() []string {
	return slices.Clone(constvars.AppointmentTimeSlots)
}
