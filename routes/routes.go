package routes

import (
	"database/sql"

	"attendance_backend/handlers"
	"attendance_backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, jwtSecret []byte) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, jwtSecret)
	userHandler := handlers.NewUserHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	leaveHandler := handlers.NewLeaveHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.RefreshToken)
	api.GET("/health", healthHandler.HealthCheck)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		// Attendance routes. Per-user paths live under /attendance/user
		// because gin cannot mix a :userId segment with the static
		// /attendance/all and /attendance/summary siblings.
		protected.POST("/attendance/checkin", attendanceHandler.CheckIn)
		protected.GET("/attendance/user/:userId", attendanceHandler.GetUserHistory)
		protected.GET("/attendance/user/:userId/summary", attendanceHandler.GetPeriodSummary)

		// Leave routes
		protected.POST("/leaves", leaveHandler.SubmitLeave)
		protected.GET("/leaves", leaveHandler.GetLeaves)

		// Logout route
		protected.POST("/auth/logout", authHandler.Logout)
	}

	// Manager-only routes
	manager := protected.Group("/")
	manager.Use(middleware.ManagerOnly())
	{
		manager.GET("/users", userHandler.GetUsers)
		manager.GET("/attendance/all", attendanceHandler.GetAllAttendance)
		manager.GET("/attendance/summary", attendanceHandler.GetDailySummary)
		manager.PUT("/leaves/:id", leaveHandler.DecideLeave)
	}
}
