package evaluations

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CampusHub/src/database"
	"Backend-CampusHub/src/models"
	"Backend-CampusHub/src/services/projects"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create assigns an assessor to a project and builds the evaluation shell:
// status Pending, all 5 criteria present but unscored, totalScore 0.
// AssessorName is snapshotted here and never re-synced.
func Create(ctx context.Context, assessorID primitive.ObjectID, assessorName string, req *models.CreateEvaluationRequest) (*models.Evaluation, error) {
	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		return nil, newValidationError("invalid project ID")
	}

	if !models.IsValidAssessorRole(req.AssessorRole) {
		return nil, newValidationError(fmt.Sprintf("unknown assessor role %q", req.AssessorRole))
	}

	exists, err := projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	now := time.Now()
	eval := &models.Evaluation{
		ID:           primitive.NewObjectID(),
		ProjectID:    projectID,
		AssessorID:   assessorID,
		AssessorName: assessorName,
		AssessorRole: req.AssessorRole,
		Criteria:     models.NewRubric(),
		FinalComment: "",
		TotalScore:   0,
		Status:       models.EvaluationPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique (projectId, assessorId) index makes check-then-insert
	// atomic: a concurrent duplicate create loses here, not at the check.
	_, err = DB.EvaluationCollection.InsertOne(ctx, eval)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyAssigned
		}
		return nil, err
	}

	return eval, nil
}

// GetByID fetches one evaluation.
func GetByID(ctx context.Context, id string) (*models.Evaluation, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, newValidationError("invalid evaluation ID")
	}

	var eval models.Evaluation
	err = DB.EvaluationCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&eval)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}

	return &eval, nil
}

// List returns evaluations filtered by project and/or assessor, newest first.
func List(ctx context.Context, projectID, assessorID string) ([]models.Evaluation, error) {
	filter := bson.M{}
	if projectID != "" {
		objID, err := primitive.ObjectIDFromHex(projectID)
		if err != nil {
			return nil, newValidationError("invalid project ID")
		}
		filter["projectId"] = objID
	}
	if assessorID != "" {
		objID, err := primitive.ObjectIDFromHex(assessorID)
		if err != nil {
			return nil, newValidationError("invalid assessor ID")
		}
		filter["assessorId"] = objID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.EvaluationCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	evals := []models.Evaluation{}
	if err = cursor.All(ctx, &evals); err != nil {
		return nil, err
	}

	return evals, nil
}

// RecordScores overwrites only the supplied criterion fields and recomputes
// totalScore. The write is one pipeline update filtered on status=Pending:
// the criteria merge and the totalScore derivation both evaluate against
// the document state inside that single update, so two concurrent calls
// editing different criteria cannot clobber each other's updates and the
// persisted total always equals the sum of the persisted scores. Repeating
// the same input is a no-op.
//
// Ownership (only the assigned assessor may score) is enforced by the HTTP
// layer; this function trusts its caller.
func RecordScores(ctx context.Context, id string, req *models.RecordScoresRequest) (*models.Evaluation, error) {
	eval, err := GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if eval.Status == models.EvaluationSubmitted {
		return nil, ErrAlreadySubmitted
	}

	if err := validateUpdates(eval.Criteria, req.Criteria); err != nil {
		return nil, err
	}

	var updated models.Evaluation
	err = DB.EvaluationCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": eval.ID, "status": models.EvaluationPending},
		scoresPipeline(req.Criteria, req.FinalComment, time.Now()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// submitted between our read and write
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	return &updated, nil
}

// Submit freezes the evaluation: status Submitted, submittedAt set once,
// totalScore left at the sum RecordScores maintained. The transition is
// rejected, not silently absorbed, when the evaluation is already
// Submitted. Every criterion must carry a score.
func Submit(ctx context.Context, id string) (*models.Evaluation, error) {
	eval, err := GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if eval.Status == models.EvaluationSubmitted {
		return nil, ErrAlreadySubmitted
	}

	if name := missingCriterion(eval.Criteria); name != "" {
		return nil, &ValidationError{Criterion: name, Reason: "incomplete rubric: criterion has no score"}
	}

	now := time.Now()
	result, err := DB.EvaluationCollection.UpdateOne(ctx,
		bson.M{"_id": eval.ID, "status": models.EvaluationPending},
		bson.M{"$set": bson.M{
			"status":      models.EvaluationSubmitted,
			"submittedAt": now,
			"updatedAt":   now,
		}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrAlreadySubmitted
	}

	return GetByID(ctx, id)
}

// Summary recomputes the cross-assessor aggregate from source on every
// call. Volume per project is bounded by the assigned assessors, so there
// is nothing worth caching.
func Summary(ctx context.Context, projectID string) (*models.EvaluationSummary, error) {
	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, newValidationError("invalid project ID")
	}

	cursor, err := DB.EvaluationCollection.Find(ctx, bson.M{"projectId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var evals []models.Evaluation
	if err = cursor.All(ctx, &evals); err != nil {
		return nil, err
	}

	return buildSummary(evals), nil
}

// Delete removes an evaluation unconditionally (administrative path).
// Nothing cascades: projects and assessors only ever reference outward.
func Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return newValidationError("invalid evaluation ID")
	}

	result, err := DB.EvaluationCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrEvaluationNotFound
	}

	return nil
}
