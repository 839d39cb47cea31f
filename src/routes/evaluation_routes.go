package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"
	"Backend-CampusHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// EvaluationRoutes กำหนดเส้นทางสำหรับการประเมินโปรเจกต์
func EvaluationRoutes(app *fiber.App) {
	evalRoutes := app.Group("/evaluations", middleware.AuthJWT)

	// only staff accounts assign themselves as assessors
	evalRoutes.Post("/", middleware.RequireRole(models.RoleFaculty, models.RoleAdmin), controllers.CreateEvaluation)
	evalRoutes.Get("/", controllers.GetEvaluations)
	evalRoutes.Get("/project/:projectId/summary", controllers.GetProjectEvaluationSummary)
	evalRoutes.Get("/:id", controllers.GetEvaluationByID)
	evalRoutes.Put("/:id/scores", middleware.RequireRole(models.RoleFaculty, models.RoleAdmin), controllers.RecordScores)
	evalRoutes.Post("/:id/submit", middleware.RequireRole(models.RoleFaculty, models.RoleAdmin), controllers.SubmitEvaluation)
	evalRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteEvaluation)
}
