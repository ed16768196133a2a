package models

import (
	"doccare-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is the persisted booking. Doctor fields are a snapshot taken at
// booking time.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	DoctorID        string             `bson:"doctorId"`
	DoctorName      string             `bson:"doctorName"`
	DoctorSpecialty string             `bson:"doctorSpecialty"`
	UserID          string             `bson:"userId"`
	UserEmail       string             `bson:"userEmail"`
	AppointmentDate string             `bson:"appointmentDate"`
	AppointmentTime string             `bson:"appointmentTime"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

func (a *Appointment) Validate() error {
	var errs []error
	if a.DoctorID == "" {
		errs = append(errs, errors.New("doctorId is empty"))
	}
	if a.UserID == "" {
		errs = append(errs, errors.New("userId is empty"))
	}

	date, err := time.Parse(constvars.AppointmentDateLayout, a.AppointmentDate)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("appointmentDate %q is not a calendar date", a.AppointmentDate))
	case date.Weekday() != time.Saturday && date.Weekday() != time.Sunday:
		errs = append(errs, fmt.Errorf("appointmentDate %s is a %s", a.AppointmentDate, date.Weekday()))
	}

	if !slices.Contains(constvars.AppointmentTimeSlots, a.AppointmentTime) {
		errs = append(errs, fmt.Errorf("appointmentTime %q is not a known slot", a.AppointmentTime))
	}

	switch a.Status {
	case constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled:
	default:
		errs = append(errs, fmt.Errorf("status %q is unknown", a.Status))
	}

	return errors.Join(errs...)
}
