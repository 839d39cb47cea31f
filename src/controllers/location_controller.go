package controllers

import (
	"errors"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

func handleLocationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrLocationNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Location not found")
	case errors.Is(err, services.ErrQRCodeRefTaken):
		return utils.HandleError(c, fiber.StatusConflict, "QR code reference already in use")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// CreateLocation godoc
// @Summary      Register a campus location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body body models.CreateLocationRequest true "Location"
// @Success      201  {object}  models.Location
// @Failure      400  {object}  models.ErrorResponse
// @Router       /locations [post]
func CreateLocation(c *fiber.Ctx) error {
	var req models.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	location, err := services.CreateLocation(c.Context(), &req)
	if err != nil {
		return handleLocationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func GetAllLocations(c *fiber.Ctx) error {
	locations, err := services.GetAllLocations(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(locations)
}

func GetLocationByID(c *fiber.Ctx) error {
	location, err := services.GetLocationByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleLocationError(c, err)
	}
	return c.JSON(location)
}

// GetLocationByQRCodeRef resolves a scanned QR payload to its location.
// This route is public so the campus map works without a login.
func GetLocationByQRCodeRef(c *fiber.Ctx) error {
	location, err := services.GetLocationByQRCodeRef(c.Context(), c.Params("ref"))
	if err != nil {
		return handleLocationError(c, err)
	}
	return c.JSON(location)
}

func UpdateLocation(c *fiber.Ctx) error {
	var req models.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	location, err := services.UpdateLocation(c.Context(), c.Params("id"), &req)
	if err != nil {
		return handleLocationError(c, err)
	}
	return c.JSON(location)
}

func DeleteLocation(c *fiber.Ctx) error {
	if err := services.DeleteLocation(c.Context(), c.Params("id")); err != nil {
		return handleLocationError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Location deleted successfully"})
}

// CreateLocationQRCode godoc
// @Summary      Generate the printable QR image for a location
// @Tags         locations
// @Produce      json
// @Param        id path string true "Location ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /locations/{id}/qrcode [post]
func CreateLocationQRCode(c *fiber.Ctx) error {
	url, err := services.CreateLocationQRCode(c.Context(), c.Params("id"))
	if err != nil {
		return handleLocationError(c, err)
	}
	return c.JSON(fiber.Map{"qrCodeURL": url})
}
