package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Rating    float64            `bson:"rating" json:"rating"`
	// Image is either an absolute URL or an object key in the portrait bucket.
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

func (d *Doctor) Validate() error {
	if d.Name == "" {
		return errors.New("name is empty")
	}
	return nil
}
