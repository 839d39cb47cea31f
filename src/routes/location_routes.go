package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"
	"Backend-CampusHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// LocationRoutes กำหนดเส้นทางสำหรับสถานที่ในมหาวิทยาลัย
func LocationRoutes(app *fiber.App) {
	locationRoutes := app.Group("/locations")

	// public: the campus map and QR scans work without a login
	locationRoutes.Get("/", controllers.GetAllLocations)
	locationRoutes.Get("/qr/:ref", controllers.GetLocationByQRCodeRef)
	locationRoutes.Get("/:id", controllers.GetLocationByID)

	admin := middleware.RequireRole(models.RoleAdmin)
	locationRoutes.Post("/", middleware.AuthJWT, admin, controllers.CreateLocation)
	locationRoutes.Put("/:id", middleware.AuthJWT, admin, controllers.UpdateLocation)
	locationRoutes.Delete("/:id", middleware.AuthJWT, admin, controllers.DeleteLocation)
	locationRoutes.Post("/:id/qrcode", middleware.AuthJWT, admin, controllers.CreateLocationQRCode)
}
