package repository

import (
	"context"

	"fitlog/workout-logger/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrDuplicateUser = RepositoryError("user with this email already exists")
	ErrInvalidRecord = RepositoryError("record failed validation")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
// Every read and write is filtered by the owning user: a workout that exists
// but belongs to someone else is indistinguishable from one that does not
// exist (ErrNotFound either way).
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Workout, error)
	// ListByUser returns the user's workouts ordered by date descending,
	// capped at limit.
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.Workout, error)
	// Update replaces exercises, duration and notes of the matching workout
	// in one atomic operation and returns the stored record as written. The
	// owner and original date are left untouched.
	Update(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
