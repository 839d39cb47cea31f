package controllers

import (
	"errors"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateConsultation - จองเวลาปรึกษาอาจารย์
func CreateConsultation(c *fiber.Ctx) error {
	var req models.CreateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}
	name, _ := c.Locals("name").(string)

	consultation, err := services.CreateConsultation(c.Context(), oid, name, &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(consultation)
}

func GetConsultations(c *fiber.Ctx) error {
	// students only see their own; faculty can filter by their name
	userID := ""
	if role, _ := c.Locals("role").(string); role == models.RoleStudent {
		userID, _ = c.Locals("userId").(string)
	}

	consultations, err := services.GetConsultations(c.Context(), userID, c.Query("faculty"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(consultations)
}

func DeleteConsultation(c *fiber.Ctx) error {
	if err := services.DeleteConsultation(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Consultation not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Consultation deleted successfully"})
}
