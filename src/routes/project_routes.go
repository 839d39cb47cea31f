package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"
	"Backend-CampusHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// ProjectRoutes กำหนดเส้นทางสำหรับ Project API
func ProjectRoutes(app *fiber.App) {
	projectRoutes := app.Group("/projects", middleware.AuthJWT)

	projectRoutes.Post("/", controllers.CreateProject)
	projectRoutes.Get("/", controllers.GetAllProjects)
	projectRoutes.Get("/:id", controllers.GetProjectByID)
	projectRoutes.Put("/:id", middleware.RequireRole(models.RoleFaculty, models.RoleAdmin), controllers.UpdateProject)
	projectRoutes.Post("/:id/submissions", controllers.AddProjectSubmission)
	projectRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteProject)
}
