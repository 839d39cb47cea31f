package controllers

import (
	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SendMessage - ส่งข้อความหาผู้ใช้คนอื่น
func SendMessage(c *fiber.Ctx) error {
	var req models.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	senderID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}
	senderName, _ := c.Locals("name").(string)

	message, err := services.SendMessage(c.Context(), senderID, senderName, &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetConversation returns the thread between the caller and another user.
func GetConversation(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	messages, err := services.GetConversation(c.Context(), userID, c.Params("otherId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(messages)
}

// MarkConversationRead flags every message from the other user as read.
func MarkConversationRead(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	readerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	count, err := services.MarkMessagesRead(c.Context(), readerID, c.Params("otherId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"updated": count})
}
