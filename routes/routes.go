package routes

import (
	"github.com/JovenTung/UpNext/controllers"
	"github.com/JovenTung/UpNext/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup) {
	router.POST("/signup", controllers.Signup())
	router.POST("/login", controllers.Login())

	// Stateless planner: everything arrives in the request body.
	router.POST("/plan", controllers.Plan())

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		protected.GET("/me", controllers.GetMe())

		// Plan from stored data and persist the result
		protected.POST("/plan/apply", controllers.ApplyPlan())

		protected.POST("/assignments", controllers.CreateAssignment())
		protected.GET("/assignments", controllers.GetMyAssignments())
		protected.GET("/assignments/:id", controllers.GetAssignment())
		protected.DELETE("/assignments/:id", controllers.DeleteAssignment())

		protected.GET("/preferences", controllers.GetPreferences())
		protected.PUT("/preferences", controllers.SavePreferences())

		protected.GET("/events", controllers.GetMyEvents())
		protected.POST("/events", controllers.UpsertEvents())
		protected.PATCH("/events/:id", controllers.UpdateEvent())
	}
}
