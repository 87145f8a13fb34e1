package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitlog/workout-logger/internal/domain"
	"fitlog/workout-logger/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExercisePayload is the wire shape of an embedded exercise, shared by
// requests and responses.
type ExercisePayload struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// CreateWorkoutRequest defines the expected JSON for logging a workout.
// Every field is optional: a missing date defaults to the creation time,
// missing exercises to an empty list, duration to 0.
type CreateWorkoutRequest struct {
	Date      *time.Time        `json:"date"`
	Exercises []ExercisePayload `json:"exercises"`
	Duration  float64           `json:"duration"`
	Notes     string            `json:"notes"`
}

// UpdateWorkoutRequest defines the expected JSON for replacing a workout's
// mutable fields. The payload replaces exercises, duration and notes
// wholesale; omitted fields fall back to their defaults.
type UpdateWorkoutRequest struct {
	Exercises []ExercisePayload `json:"exercises"`
	Duration  float64           `json:"duration"`
	Notes     string            `json:"notes"`
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user"`
	Date      time.Time         `json:"date"`
	Exercises []ExercisePayload `json:"exercises"`
	Duration  float64           `json:"duration"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// MapWorkoutToResponse converts a domain.Workout to a WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	exercises := make([]ExercisePayload, len(w.Exercises))
	for i, ex := range w.Exercises {
		exercises[i] = ExercisePayload(ex)
	}
	return WorkoutResponse{
		ID:        w.ID.Hex(),
		UserID:    w.UserID.Hex(),
		Date:      w.Date,
		Exercises: exercises,
		Duration:  w.Duration,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to DTOs.
// Always returns a non-nil slice so empty lists serialize as [].
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(&w)
	}
	return responses
}

func mapPayloadToExercises(payload []ExercisePayload) []domain.Exercise {
	exercises := make([]domain.Exercise, len(payload))
	for i, ex := range payload {
		exercises[i] = domain.Exercise(ex)
	}
	return exercises
}

// --- Handler Methods ---

// ListWorkouts returns the caller's workouts, newest first, at most 20.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		abortServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetRecentWorkouts returns the caller's newest 5 workouts for summary views.
func (h *WorkoutHandler) GetRecentWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workouts, err := h.workoutService.ListRecentWorkouts(c.Request.Context(), userID)
	if err != nil {
		abortServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// CreateWorkout logs a new workout owned by the caller.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	workout, err := h.workoutService.CreateWorkout(
		c.Request.Context(),
		userID,
		date,
		mapPayloadToExercises(req.Exercises),
		req.Duration,
		req.Notes,
	)
	if err != nil {
		abortServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// GetWorkout returns a single workout. A workout owned by another user is
// reported exactly like one that does not exist.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// A malformed id cannot match any document.
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else {
			abortServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// UpdateWorkout replaces the mutable fields of the caller's workout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.UpdateWorkout(
		c.Request.Context(),
		userID,
		workoutID,
		mapPayloadToExercises(req.Exercises),
		req.Duration,
		req.Notes,
	)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else {
			abortServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout removes the caller's workout.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}

	err = h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else {
			abortServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
