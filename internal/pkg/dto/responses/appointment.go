package responses

import "time"

type AvailableDate struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type AvailableDates struct {
	Dates     []AvailableDate `json:"dates"`
	TimeSlots []string        `json:"time_slots"`
}

type Appointment struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	DoctorSpecialty string    `json:"doctor_specialty,omitempty"`
	UserID          string    `json:"user_id"`
	UserEmail       string    `json:"user_email,omitempty"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingConfirmation struct {
	BookingID          string `json:"booking_id"`
	DoctorName         string `json:"doctor_name"`
	AppointmentDate    string `json:"appointment_date"`
	AppointmentTime    string `json:"appointment_time"`
	Status             string `json:"status"`
	NotificationStatus string `json:"notification_status"`
	Replayed           bool   `json:"replayed,omitempty"`
}
