package domain

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single line item inside a workout. It is embedded as a
// subdocument and never addressed on its own.
type Exercise struct {
	Name   string  `bson:"name" json:"name"`
	Sets   int     `bson:"sets" json:"sets"`
	Reps   int     `bson:"reps" json:"reps"`
	Weight float64 `bson:"weight" json:"weight"`
}

// Normalize trims surrounding whitespace from free-text fields.
func (e *Exercise) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
}

// Validate checks the exercise field constraints. Normalize should be
// called first so a whitespace-only name fails the required rule.
func (e Exercise) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Sets, validation.Required, validation.Min(1)),
		validation.Field(&e.Reps, validation.Required, validation.Min(1)),
		validation.Field(&e.Weight, validation.Min(0.0)),
	)
}

// Workout represents a single logged training session owned by one user.
// Exercises keep their submission order.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"` // Owner; set at creation, never changed
	Date      time.Time          `bson:"date" json:"date"`
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	Duration  float64            `bson:"duration" json:"duration"` // Minutes; fractional values allowed
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize trims free-text fields on the workout and all embedded exercises.
func (w *Workout) Normalize() {
	w.Notes = strings.TrimSpace(w.Notes)
	for i := range w.Exercises {
		w.Exercises[i].Normalize()
	}
}

// Validate checks the workout and every embedded exercise. The repository
// calls this before any insert or replace, so an invalid document is never
// persisted.
func (w Workout) Validate() error {
	if err := validation.ValidateStruct(&w,
		validation.Field(&w.UserID, validation.By(requiredObjectID)),
		validation.Field(&w.Duration, validation.Min(0.0)),
	); err != nil {
		return err
	}
	for _, ex := range w.Exercises {
		if err := ex.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func requiredObjectID(value interface{}) error {
	id, _ := value.(primitive.ObjectID)
	if id == primitive.NilObjectID {
		return validation.ErrRequired
	}
	return nil
}
