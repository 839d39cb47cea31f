package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"
	"Backend-CampusHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// UserRoutes กำหนดเส้นทางสำหรับ User API
func UserRoutes(app *fiber.App) {
	userRoutes := app.Group("/users", middleware.AuthJWT)

	userRoutes.Get("/", middleware.RequireRole(models.RoleAdmin), controllers.GetAllUsers)
	userRoutes.Get("/me", controllers.GetProfile)    // ข้อมูลตัวเอง
	userRoutes.Put("/me", controllers.UpdateProfile) // แก้ไขโปรไฟล์
	userRoutes.Get("/:id", controllers.GetUserByID)
	userRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteUser)
}
