package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-CampusHub/src/database"
	"Backend-CampusHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project ID")
)

// Create registers a new project in proposal stage with the creator as
// the first member.
func Create(ctx context.Context, createdBy primitive.ObjectID, req *models.CreateProjectRequest) (*models.Project, error) {
	now := time.Now()
	project := &models.Project{
		ID:             primitive.NewObjectID(),
		Title:          req.Title,
		Description:    req.Description,
		Department:     req.Department,
		Tags:           req.Tags,
		Members:        []primitive.ObjectID{createdBy},
		CreatedBy:      createdBy,
		SupervisorName: req.SupervisorName,
		Status:         models.ProjectProposal,
		Stage:          models.StageProposal,
		Submissions:    []models.ProjectSubmission{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}

	_, err := DB.ProjectCollection.InsertOne(ctx, project)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// GetAll returns projects with pagination, optional title search and
// department filter.
func GetAll(ctx context.Context, params models.PaginationParams, department string) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}
	if department != "" {
		filter["department"] = bson.M{"$regex": department, "$options": "i"}
	}

	total, err := DB.ProjectCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortOrder := 1
	if params.Order == "desc" {
		sortOrder = -1
	}
	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: params.SortBy, Value: sortOrder}})

	cursor, err := DB.ProjectCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(projects, total, params), nil
}

// GetByID fetches one project.
func GetByID(ctx context.Context, id string) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProjectID
	}

	var project models.Project
	err = DB.ProjectCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// Exists is the registry lookup the evaluation engine consumes.
func Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := DB.ProjectCollection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update overwrites only the supplied fields.
func Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProjectID
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.SupervisorName != nil {
		set["supervisorName"] = *req.SupervisorName
	}
	if req.Status != nil {
		if !contains(models.ProjectStatuses, *req.Status) {
			return nil, fmt.Errorf("invalid project status %q", *req.Status)
		}
		set["status"] = *req.Status
	}
	if req.Stage != nil {
		if !contains(models.ProjectStages, *req.Stage) {
			return nil, fmt.Errorf("invalid project stage %q", *req.Stage)
		}
		set["stage"] = *req.Stage
	}

	result, err := DB.ProjectCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrProjectNotFound
	}

	return GetByID(ctx, id)
}

// AddSubmission appends one upload to the staged progress history and
// moves the project stage along with it.
func AddSubmission(ctx context.Context, id string, uploadedBy primitive.ObjectID, req *models.AddSubmissionRequest) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProjectID
	}

	submission := models.ProjectSubmission{
		UploadedBy: uploadedBy,
		UploadedAt: time.Now(),
		FileURL:    req.FileURL,
		Notes:      req.Notes,
		Stage:      req.Stage,
	}

	result, err := DB.ProjectCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{
			"$push": bson.M{"submissions": submission},
			"$set": bson.M{
				"stage":     req.Stage,
				"status":    models.ProjectUnderReview,
				"updatedAt": submission.UploadedAt,
			},
		},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrProjectNotFound
	}

	return GetByID(ctx, id)
}

// Delete removes a project.
func Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidProjectID
	}

	result, err := DB.ProjectCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
