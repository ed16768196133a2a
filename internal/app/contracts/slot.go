package contracts

import (
	"doccare-service/internal/app/models"
	"time"
)

type SlotResolver interface {
	ComputeUpcomingWeekendDates(referenceInstant time.Time) []models.AvailableDateEntry
	ValidateSelection(date, timeSlot string) (*models.ValidatedSlot, error)
	EnsureUpcoming(slot *models.ValidatedSlot, referenceInstant time.Time) error
	TimeSlots() []string
}
