package controllers

import (
	"errors"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services/reservations"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func handleReservationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Reservation not found")
	case errors.Is(err, reservations.ErrSlotTaken):
		return utils.HandleError(c, fiber.StatusConflict, "The selected time slot is already reserved")
	case errors.Is(err, reservations.ErrAlreadyCancelled):
		return utils.HandleError(c, fiber.StatusConflict, "Reservation is already cancelled")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// CreateReservation godoc
// @Summary      Reserve a desk, lab seat or meeting room
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body body models.CreateReservationRequest true "Reservation"
// @Success      201  {object}  models.Reservation
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /reservations [post]
func CreateReservation(c *fiber.Ctx) error {
	var req models.CreateReservationRequest
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
	email, _ := c.Locals("email").(string)

	reservation, err := reservations.Create(c.Context(), oid, name, email, &req)
	if err != nil {
		return handleReservationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reservation)
}

// GetAllReservations godoc
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Param        resourceType query string false "desk, lab or meeting-room"
// @Param        date query string false "YYYY-MM-DD"
// @Param        status query string false "Reservation status"
// @Success      200  {array}  models.Reservation
// @Router       /reservations [get]
func GetAllReservations(c *fiber.Ctx) error {
	// students only ever see their own bookings
	userID := ""
	if role, _ := c.Locals("role").(string); role == models.RoleStudent {
		userID, _ = c.Locals("userId").(string)
	}

	result, err := reservations.GetAll(c.Context(), c.Query("resourceType"), c.Query("date"), c.Query("status"), userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

func GetReservationByID(c *fiber.Ctx) error {
	reservation, err := reservations.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleReservationError(c, err)
	}
	return c.JSON(reservation)
}

func CancelReservation(c *fiber.Ctx) error {
	reservation, err := reservations.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleReservationError(c, err)
	}

	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin && reservation.UserID.Hex() != userID {
		return utils.HandleError(c, fiber.StatusForbidden, "Not authorized to cancel this reservation")
	}

	cancelled, err := reservations.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return handleReservationError(c, err)
	}
	return c.JSON(cancelled)
}

func DeleteReservation(c *fiber.Ctx) error {
	if err := reservations.Delete(c.Context(), c.Params("id")); err != nil {
		return handleReservationError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reservation deleted successfully"})
}
