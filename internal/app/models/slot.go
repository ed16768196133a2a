package models

import (
	"doccare-service/internal/pkg/constvars"
	"time"
)

// AvailableDateEntry is computed per request and never stored.
type AvailableDateEntry struct {
	Label string
	Value string
	Date  time.Time
}

// ValidatedSlot is the output of a successful slot validation.
type ValidatedSlot struct {
	Date time.Time
	Time string
}

// DateValue is the storage form of the slot date.
func (s ValidatedSlot) DateValue() string {
	return s.Date.Format(constvars.AppointmentDateLayout)
}

type BookingConfirmation struct {
	BookingID          string
	Appointment        *Appointment
	NotificationStatus string
	Replayed           bool
}

// PendingNotification is queued when a booking notification could not be
// written right after the appointment.
type PendingNotification struct {
	AppointmentID string             `json:"appointmentId"`
	Notification  NotificationRecord `json:"notification"`
	Attempts      int                `json:"attempts"`
	LastError     string             `json:"lastError,omitempty"`
}

// BookingEvent is published after a successful booking.
type BookingEvent struct {
	EventID            string    `json:"eventId"`
	EventType          string    `json:"eventType"`
	AppointmentID      string    `json:"appointmentId"`
	UserID             string    `json:"userId"`
	DoctorID           string    `json:"doctorId"`
	AppointmentDate    string    `json:"appointmentDate"`
	AppointmentTime    string    `json:"appointmentTime"`
	NotificationStatus string    `json:"notificationStatus"`
	OccurredAt         time.Time `json:"occurredAt"`
}
