package controllers

import (
	"errors"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services/groupposts"
	"Backend-CampusHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func handleGroupPostError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, groupposts.ErrPostNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Group post not found")
	case errors.Is(err, groupposts.ErrApplicationNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Application not found")
	case errors.Is(err, groupposts.ErrAlreadyApplied):
		return utils.HandleError(c, fiber.StatusConflict, "You have already applied to this post")
	case errors.Is(err, groupposts.ErrPostFilled):
		return utils.HandleError(c, fiber.StatusConflict, "This group is already full")
	case errors.Is(err, groupposts.ErrAlreadyDecided):
		return utils.HandleError(c, fiber.StatusConflict, "Application has already been decided")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func callerObjectID(c *fiber.Ctx) (primitive.ObjectID, error) {
	userID, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(userID)
}

// CreateGroupPost godoc
// @Summary      Post a teammate search
// @Tags         group-posts
// @Accept       json
// @Produce      json
// @Param        body body models.CreateGroupPostRequest true "Post"
// @Success      201  {object}  models.GroupPost
// @Failure      400  {object}  models.ErrorResponse
// @Router       /group-posts [post]
func CreateGroupPost(c *fiber.Ctx) error {
	var req models.CreateGroupPostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	postedBy, err := callerObjectID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	post, err := groupposts.CreatePost(c.Context(), postedBy, &req)
	if err != nil {
		return handleGroupPostError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetGroupPosts returns the public feed, or the caller's own posts with ?mine=true.
func GetGroupPosts(c *fiber.Ctx) error {
	var (
		posts []models.GroupPost
		err   error
	)
	if c.Query("mine") == "true" {
		userID, _ := c.Locals("userId").(string)
		posts, err = groupposts.GetPostsByUser(c.Context(), userID)
	} else {
		posts, err = groupposts.GetPublicPosts(c.Context())
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(posts)
}

func GetGroupPostByID(c *fiber.Ctx) error {
	post, err := groupposts.GetPostByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleGroupPostError(c, err)
	}
	return c.JSON(post)
}

func requirePostOwnership(c *fiber.Ctx, post *models.GroupPost) error {
	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	if role == models.RoleAdmin || post.PostedBy.Hex() == userID {
		return nil
	}
	return utils.HandleError(c, fiber.StatusForbidden, "Not authorized to modify this post")
}

func UpdateGroupPost(c *fiber.Ctx) error {
	var req models.UpdateGroupPostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	post, err := groupposts.GetPostByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleGroupPostError(c, err)
	}
	if err := requirePostOwnership(c, post); err != nil {
		return err
	}

	updated, err := groupposts.UpdatePost(c.Context(), c.Params("id"), &req)
	if err != nil {
		return handleGroupPostError(c, err)
	}
	return c.JSON(updated)
}

func ArchiveGroupPost(c *fiber.Ctx) error {
	post, err := groupposts.GetPostByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleGroupPostError(c, err)
	}
	if err := requirePostOwnership(c, post); err != nil {
		return err
	}

	archived, err := groupposts.ArchivePost(c.Context(), c.Params("id"))
	if err != nil {
		return handleGroupPostError(c, err)
	}
	return c.JSON(archived)
}

func DeleteGroupPost(c *fiber.Ctx) error {
	post, err := groupposts.GetPostByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleGroupPostError(c, err)
	}
	if err := requirePostOwnership(c, post); err != nil {
		return err
	}

	if err := groupposts.DeletePost(c.Context(), c.Params("id")); err != nil {
		return handleGroupPostError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Group post deleted successfully"})
}

// ApplyToGroupPost godoc
// @Summary      Apply to join a group
// @Tags         group-posts
// @Accept       json
// @Produce      json
// @Param        body body models.ApplyRequest true "Application"
// @Success      201  {object}  models.Application
// @Failure      409  {object}  models.ErrorResponse
// @Router       /applications [post]
func ApplyToGroupPost(c *fiber.Ctx) error {
	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	applicantID, err := callerObjectID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	application, err := groupposts.Apply(c.Context(), applicantID, &req)
	if err != nil {
		return handleGroupPostError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

func GetApplicationsByPost(c *fiber.Ctx) error {
	post, err := groupposts.GetPostByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleGroupPostError(c, err)
	}
	// only the poster reviews applications
	if err := requirePostOwnership(c, post); err != nil {
		return err
	}

	applications, err := groupposts.GetApplicationsByPost(c.Context(), c.Params("id"))
	if err != nil {
		return handleGroupPostError(c, err)
	}
	return c.JSON(applications)
}

// DecideApplication - อนุมัติหรือปฏิเสธใบสมัคร
func DecideApplication(c *fiber.Ctx) error {
	var req struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	application, err := groupposts.DecideApplication(c.Context(), c.Params("id"), req.Approve)
	if err != nil {
		return handleGroupPostError(c, err)
	}
	return c.JSON(application)
}
