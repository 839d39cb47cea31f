package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"
	"Backend-CampusHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// ReservationRoutes กำหนดเส้นทางสำหรับการจองพื้นที่
func ReservationRoutes(app *fiber.App) {
	reservationRoutes := app.Group("/reservations", middleware.AuthJWT)

	reservationRoutes.Post("/", controllers.CreateReservation)
	reservationRoutes.Get("/", controllers.GetAllReservations)
	reservationRoutes.Get("/:id", controllers.GetReservationByID)
	reservationRoutes.Patch("/:id/cancel", controllers.CancelReservation)
	reservationRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteReservation)
}
