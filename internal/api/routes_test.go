package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/workout-logger/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHealthRoute(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, testSecret, &stubAuthService{}, &stubWorkoutService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Workout Logger API is running!")
}

func TestSetupRoutesGuardsWorkouts(t *testing.T) {
	router := gin.New()
	svc := &stubWorkoutService{
		list: func(context.Context, primitive.ObjectID) ([]domain.Workout, error) {
			return nil, nil
		},
	}
	SetupRoutes(router, testSecret, &stubAuthService{}, svc)

	// Without a token the service is never reached.
	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// With one, the route resolves.
	rec = doAuthedRequest(t, router, http.MethodGet, "/api/workouts", primitive.NewObjectID(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
