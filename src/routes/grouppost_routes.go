package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// GroupPostRoutes กำหนดเส้นทางสำหรับบอร์ดหาเพื่อนร่วมทีม
func GroupPostRoutes(app *fiber.App) {
	postRoutes := app.Group("/group-posts", middleware.AuthJWT)

	postRoutes.Post("/", controllers.CreateGroupPost)
	postRoutes.Get("/", controllers.GetGroupPosts)
	postRoutes.Get("/:id", controllers.GetGroupPostByID)
	postRoutes.Put("/:id", controllers.UpdateGroupPost)
	postRoutes.Patch("/:id/archive", controllers.ArchiveGroupPost)
	postRoutes.Delete("/:id", controllers.DeleteGroupPost)
	postRoutes.Get("/:id/applications", controllers.GetApplicationsByPost)

	appRoutes := app.Group("/applications", middleware.AuthJWT)
	appRoutes.Post("/", controllers.ApplyToGroupPost)
	appRoutes.Patch("/:id/decide", controllers.DecideApplication)
}
