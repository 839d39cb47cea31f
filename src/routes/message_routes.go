package routes

import (
	"Backend-CampusHub/src/controllers"
	"Backend-CampusHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// MessageRoutes กำหนดเส้นทางสำหรับข้อความ
func MessageRoutes(app *fiber.App) {
	messageRoutes := app.Group("/messages", middleware.AuthJWT)

	messageRoutes.Post("/", controllers.SendMessage)
	messageRoutes.Get("/:otherId", controllers.GetConversation)
	messageRoutes.Patch("/:otherId/read", controllers.MarkConversationRead)
}
