package api

import (
	"net/http"

	"fitlog/workout-logger/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes on the given engine. The workout
// routes are guarded by the JWT middleware; auth routes and the health
// route are open.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	workoutService service.WorkoutService,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Workout Logger API is running!"})
	})

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	workoutGroup := router.Group("/api/workouts")
	workoutGroup.Use(authMiddleware)
	{
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.GET("/recent", workoutHandler.GetRecentWorkouts)
		workoutGroup.POST("", workoutHandler.CreateWorkout)
		workoutGroup.GET("/:id", workoutHandler.GetWorkout)
		workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
		workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
	}
}
