package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ConsultationRoutes กำหนดเส้นทางสำหรับการนัดปรึกษาอาจารย์
func ConsultationRoutes(app *fiber.App) {
	consultationRoutes := app.Group("/consultations", middleware.AuthJWT)

	consultationRoutes.Post("/", controllers.CreateConsultation)
	consultationRoutes.Get("/", controllers.GetConsultations)
	consultationRoutes.Delete("/:id", controllers.DeleteConsultation)
}
