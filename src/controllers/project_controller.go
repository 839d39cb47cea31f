package controllers

import (
	"errors"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services/projects"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func handleProjectError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, projects.ErrProjectNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	case errors.Is(err, projects.ErrInvalidProjectID):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// CreateProject godoc
// @Summary      Register a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body body models.CreateProjectRequest true "Project"
// @Success      201  {object}  models.Project
// @Failure      400  {object}  models.ErrorResponse
// @Router       /projects [post]
func CreateProject(c *fiber.Ctx) error {
	var req models.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	createdBy, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	project, err := projects.Create(c.Context(), createdBy, &req)
	if err != nil {
		return handleProjectError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetAllProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page"
// @Param        search query string false "Search by title"
// @Param        department query string false "Filter by department"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /projects [get]
func GetAllProjects(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := projects.GetAll(c.Context(), params, c.Query("department"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

func GetProjectByID(c *fiber.Ctx) error {
	project, err := projects.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleProjectError(c, err)
	}
	return c.JSON(project)
}

func UpdateProject(c *fiber.Ctx) error {
	var req models.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	project, err := projects.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return handleProjectError(c, err)
	}
	return c.JSON(project)
}

// AddProjectSubmission - อัปโหลดงานตาม stage ของโปรเจกต์
func AddProjectSubmission(c *fiber.Ctx) error {
	var req models.AddSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	uploadedBy, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	project, err := projects.AddSubmission(c.Context(), c.Params("id"), uploadedBy, &req)
	if err != nil {
		return handleProjectError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func DeleteProject(c *fiber.Ctx) error {
	if err := projects.Delete(c.Context(), c.Params("id")); err != nil {
		return handleProjectError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
