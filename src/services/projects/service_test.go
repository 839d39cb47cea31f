package projects

import (
	"context"
	"testing"

	"Backend-CampusHub/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Malformed IDs must surface as ErrInvalidProjectID (a client error, not a
// server fault) and are rejected before any database access.
func TestMalformedIDIsInvalidProjectID(t *testing.T) {
	ctx := context.Background()

	_, err := GetByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrInvalidProjectID)

	_, err = Update(ctx, "not-a-hex-id", &models.UpdateProjectRequest{})
	assert.ErrorIs(t, err, ErrInvalidProjectID)

	_, err = AddSubmission(ctx, "not-a-hex-id", primitive.NewObjectID(), &models.AddSubmissionRequest{
		FileURL: "https://files.example/proposal.pdf",
		Stage:   models.StageProposal,
	})
	assert.ErrorIs(t, err, ErrInvalidProjectID)

	err = Delete(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrInvalidProjectID)
}
