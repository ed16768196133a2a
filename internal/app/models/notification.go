package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationRecord is stored in the general feed when UserID is empty and
// in the user's inbox otherwise.
type NotificationRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        string             `bson:"userId,omitempty" json:"userId,omitempty"`
	AppointmentID string             `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Message       string             `bson:"message" json:"message"`
	Read          bool               `bson:"read" json:"read"`
	CreatedAt     *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (n *NotificationRecord) Validate() error {
	var errs []error
	if n.Title == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if n.Message == "" {
		errs = append(errs, errors.New("message is empty"))
	}
	return errors.Join(errs...)
}
