package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes ลงทะเบียน route ทุกกลุ่ม
func InitRoutes(app *fiber.App) {
	AuthRoutes(app)
	UserRoutes(app)
	ProjectRoutes(app)
	EvaluationRoutes(app)
	ReservationRoutes(app)
	GroupPostRoutes(app)
	LocationRoutes(app)
	MessageRoutes(app)
	ConsultationRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
