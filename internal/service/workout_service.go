package service

import (
	"context"
	"errors"
	"time"

	"fitlog/workout-logger/internal/domain"
	"fitlog/workout-logger/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrValidationFailed = errors.New("workout validation failed")
)

// Result limits for the two list endpoints. The full list always returns the
// newest 20; the recent list feeds summary views with the newest 5.
const (
	listWorkoutsLimit       = 20
	listRecentWorkoutsLimit = 5
)

// WorkoutService exposes the workout operations. Every method takes the
// caller's resolved user ID and never acts outside that user's records.
type WorkoutService interface {
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	ListRecentWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, date time.Time, exercises []domain.Exercise, duration float64, notes string) (*domain.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, exercises []domain.Exercise, duration float64, notes string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
	}
}

// ListWorkouts returns the caller's workouts, newest first, at most 20.
func (s *workoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	return s.workoutRepo.ListByUser(ctx, userID, listWorkoutsLimit)
}

// ListRecentWorkouts returns the caller's workouts, newest first, at most 5.
func (s *workoutService) ListRecentWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	return s.workoutRepo.ListByUser(ctx, userID, listRecentWorkoutsLimit)
}

// CreateWorkout persists a new workout owned by the caller. A zero date
// defaults to the creation time (applied by the repository).
func (s *workoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, date time.Time, exercises []domain.Exercise, duration float64, notes string) (*domain.Workout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to create a workout")
	}

	workout := &domain.Workout{
		UserID:    userID,
		Date:      date,
		Exercises: exercises,
		Duration:  duration,
		Notes:     notes,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidRecord) {
			return nil, ErrValidationFailed
		}
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// GetWorkout retrieves a single workout owned by the caller.
func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// UpdateWorkout replaces exercises, duration and notes of the caller's
// workout wholesale and returns the stored record from that single write.
// The owner and the workout's date are never modified.
func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, exercises []domain.Exercise, duration float64, notes string) (*domain.Workout, error) {
	if userID == primitive.NilObjectID || workoutID == primitive.NilObjectID {
		return nil, errors.New("user ID and workout ID are required")
	}

	workout := &domain.Workout{
		ID:        workoutID,
		UserID:    userID,
		Exercises: exercises,
		Duration:  duration,
		Notes:     notes,
	}

	updated, err := s.workoutRepo.Update(ctx, workout)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			// Covers both a nonexistent id and an ownership mismatch.
			return nil, ErrWorkoutNotFound
		case errors.Is(err, repository.ErrInvalidRecord):
			return nil, ErrValidationFailed
		default:
			return nil, err
		}
	}
	return updated, nil
}

// DeleteWorkout removes the caller's workout.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	if userID == primitive.NilObjectID || workoutID == primitive.NilObjectID {
		return errors.New("user ID and workout ID are required")
	}

	err := s.workoutRepo.Delete(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
