package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/captaintojo/srms/internal/app/controllers"
	"github.com/captaintojo/srms/internal/app/models"
	"github.com/captaintojo/srms/internal/app/models/dto"
	"github.com/captaintojo/srms/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	resultController *controllers.ResultController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Student-role landing stub; admins have no business here but the
		// endpoint is harmless either way
		authenticated.GET("/portal", authController.Portal)

		// Admin-only area: every student and result operation requires the
		// ADMIN role before any work happens
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			students := admin.Group("/students")
			{
				students.GET("", studentController.ListStudents)
				students.POST("", studentController.CreateStudent)
				students.GET("/:id", studentController.GetStudent)
				students.DELETE("/:id", studentController.DeleteStudent)
				students.POST("/:id/results", resultController.AddResult)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
