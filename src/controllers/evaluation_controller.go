package controllers

import (
	"errors"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services/evaluations"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// handleEvaluationError maps engine failures onto HTTP statuses. The
// taxonomy is fixed: missing records 404, duplicate assignment and
// illegal lifecycle transitions 409, malformed input 400.
func handleEvaluationError(c *fiber.Ctx, err error) error {
	var vErr *evaluations.ValidationError
	switch {
	case errors.Is(err, evaluations.ErrProjectNotFound),
		errors.Is(err, evaluations.ErrEvaluationNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, evaluations.ErrAlreadyAssigned),
		errors.Is(err, evaluations.ErrAlreadySubmitted):
		return utils.HandleError(c, fiber.StatusConflict, err.Error())
	case errors.As(err, &vErr):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// requireOwnership rejects callers that are neither the evaluation's
// assessor nor an admin. The engine trusts the identity it is handed, so
// this check lives here.
func requireOwnership(c *fiber.Ctx, eval *models.Evaluation) error {
	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	if role == models.RoleAdmin || eval.AssessorID.Hex() == userID {
		return nil
	}
	return utils.HandleError(c, fiber.StatusForbidden, "Not authorized to modify this evaluation")
}

// CreateEvaluation godoc
// @Summary      Assign an assessor to evaluate a project
// @Description  Creates the evaluation shell with the fixed 5-criterion rubric, all scores unset
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        body body models.CreateEvaluationRequest true "Assignment"
// @Success      201  {object}  models.Evaluation
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /evaluations [post]
func CreateEvaluation(c *fiber.Ctx) error {
	var req models.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	assessorID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	// snapshot the display name now; it is never re-synced
	assessorName := req.AssessorName
	if assessorName == "" {
		assessorName, _ = c.Locals("name").(string)
	}

	eval, err := evaluations.Create(c.Context(), assessorID, assessorName, &req)
	if err != nil {
		return handleEvaluationError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(eval)
}

// GetEvaluations godoc
// @Summary      List evaluations
// @Description  Optionally filtered by projectId and/or assessorId
// @Tags         evaluations
// @Produce      json
// @Param        projectId query string false "Project ID"
// @Param        assessorId query string false "Assessor ID"
// @Success      200  {array}  models.Evaluation
// @Router       /evaluations [get]
func GetEvaluations(c *fiber.Ctx) error {
	evals, err := evaluations.List(c.Context(), c.Query("projectId"), c.Query("assessorId"))
	if err != nil {
		return handleEvaluationError(c, err)
	}

	return c.JSON(evals)
}

// GetEvaluationByID - ดึงข้อมูลการประเมินตาม ID
func GetEvaluationByID(c *fiber.Ctx) error {
	eval, err := evaluations.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleEvaluationError(c, err)
	}

	return c.JSON(eval)
}

// RecordScores godoc
// @Summary      Record scores on a pending evaluation
// @Description  Overwrites only the supplied criterion fields and recomputes the total; rejected once submitted
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        id   path string true "Evaluation ID"
// @Param        body body models.RecordScoresRequest true "Criteria updates"
// @Success      200  {object}  models.Evaluation
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /evaluations/{id}/scores [put]
func RecordScores(c *fiber.Ctx) error {
	var req models.RecordScoresRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	eval, err := evaluations.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleEvaluationError(c, err)
	}
	if err := requireOwnership(c, eval); err != nil {
		return err
	}

	updated, err := evaluations.RecordScores(c.Context(), c.Params("id"), &req)
	if err != nil {
		return handleEvaluationError(c, err)
	}

	return c.JSON(updated)
}

// SubmitEvaluation godoc
// @Summary      Submit an evaluation
// @Description  Terminal transition: requires a complete rubric, freezes the total, sets submittedAt once
// @Tags         evaluations
// @Produce      json
// @Param        id path string true "Evaluation ID"
// @Success      200  {object}  models.Evaluation
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /evaluations/{id}/submit [post]
func SubmitEvaluation(c *fiber.Ctx) error {
	eval, err := evaluations.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleEvaluationError(c, err)
	}
	if err := requireOwnership(c, eval); err != nil {
		return err
	}

	submitted, err := evaluations.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return handleEvaluationError(c, err)
	}

	return c.JSON(submitted)
}

// GetProjectEvaluationSummary godoc
// @Summary      Cross-assessor summary for a project
// @Description  Average total and per-criterion averages over submitted evaluations; averageScore is null with zero submissions
// @Tags         evaluations
// @Produce      json
// @Param        projectId path string true "Project ID"
// @Success      200  {object}  models.EvaluationSummary
// @Failure      400  {object}  models.ErrorResponse
// @Router       /evaluations/project/{projectId}/summary [get]
func GetProjectEvaluationSummary(c *fiber.Ctx) error {
	summary, err := evaluations.Summary(c.Context(), c.Params("projectId"))
	if err != nil {
		return handleEvaluationError(c, err)
	}

	return c.JSON(summary)
}

// DeleteEvaluation - ลบการประเมิน (admin เท่านั้น)
func DeleteEvaluation(c *fiber.Ctx) error {
	if err := evaluations.Delete(c.Context(), c.Params("id")); err != nil {
		return handleEvaluationError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Evaluation deleted successfully",
	})
}
