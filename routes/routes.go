package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"taskhive/config"
	"taskhive/controllers"
	_ "taskhive/docs"
	"taskhive/middleware"
	"taskhive/repository"
)

// RegisterRoutes builds the controllers on top of db and mounts every route.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, conf config.Config) {
	workspaceController := controllers.NewWorkspaceController(repository.NewWorkspaceRepository(db))
	taskController := controllers.NewTaskController(repository.NewTaskRepository(db))
	subtaskController := controllers.NewSubtaskController(repository.NewSubtaskRepository(db))

	// Public routes
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Everything under /api/v1 requires a resolved identity
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(conf.JWTSecret))
	{
		api.GET("/workspaces", workspaceController.List)
		api.POST("/workspaces", workspaceController.Create)
		api.PUT("/workspaces/:id", workspaceController.Update)
		api.DELETE("/workspaces/:id", workspaceController.Delete)

		api.GET("/tasks", taskController.List)
		api.POST("/tasks", taskController.Create)
		api.PUT("/tasks/:id", taskController.Update)
		api.DELETE("/tasks/:id", taskController.Delete)

		api.GET("/subtasks", subtaskController.List)
		api.POST("/subtasks", subtaskController.Create)
		api.PUT("/subtasks/:id", subtaskController.Update)
		api.DELETE("/subtasks/:id", subtaskController.Delete)
	}
}
