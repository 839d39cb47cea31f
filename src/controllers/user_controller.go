package controllers

import (
	"errors"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers godoc
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page"
// @Param        search query string false "Search by name or email"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /users [get]
func GetAllUsers(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := services.GetAllUsers(c.Context(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

func GetUserByID(c *fiber.Ctx) error {
	user, err := services.GetUserByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(user)
}

// GetProfile returns the authenticated caller's own account.
func GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	user, err := services.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(user)
}

// UpdateProfile - แก้ไขข้อมูลส่วนตัวของตัวเอง
func UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	user, err := services.UpdateProfile(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(user)
}

func DeleteUser(c *fiber.Ctx) error {
	if err := services.DeleteUser(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
