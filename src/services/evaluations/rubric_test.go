package evaluations

import (
	"testing"
	"time"

	"Backend-CampusHub/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func TestNewRubricShape(t *testing.T) {
	criteria := models.NewRubric()

	require.Len(t, criteria, models.RubricSize)
	for i, criterion := range criteria {
		assert.Equal(t, models.RubricCriteria[i], criterion.Name)
		assert.Equal(t, models.CriterionMaxScore, criterion.MaxScore)
		assert.Nil(t, criterion.Score, "score must be unset at creation")
		assert.Empty(t, criterion.Comment)
	}
}

func TestValidateUpdatesScoreRange(t *testing.T) {
	criteria := models.NewRubric()

	// boundary values are accepted
	assert.NoError(t, validateUpdates(criteria, []models.CriterionUpdate{
		{Index: 0, Score: floatPtr(0)},
		{Index: 1, Score: floatPtr(20)},
	}))

	// above max
	err := validateUpdates(criteria, []models.CriterionUpdate{{Index: 1, Score: floatPtr(21)}})
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.RubricCriteria[1], vErr.Criterion, "error must name the offending criterion")

	// negative
	err = validateUpdates(criteria, []models.CriterionUpdate{{Index: 3, Score: floatPtr(-1)}})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.RubricCriteria[3], vErr.Criterion)
}

func TestValidateUpdatesIndexOutOfRange(t *testing.T) {
	criteria := models.NewRubric()

	var vErr *ValidationError
	err := validateUpdates(criteria, []models.CriterionUpdate{{Index: 5, Score: floatPtr(10)}})
	require.ErrorAs(t, err, &vErr)

	err = validateUpdates(criteria, []models.CriterionUpdate{{Index: -1, Score: floatPtr(10)}})
	require.ErrorAs(t, err, &vErr)
}

func TestCriterionPatchesMergeOnlySuppliedFields(t *testing.T) {
	patches := criterionPatches([]models.CriterionUpdate{
		{Index: 0, Score: floatPtr(14)},                          // score only
		{Index: 2, Score: floatPtr(19), Comment: strPtr("good")}, // both
	})

	require.Len(t, patches, 2)

	// score-only update must not carry a comment field that would
	// overwrite one stored earlier
	assert.Equal(t, bson.M{"score": 14.0}, patches[0])

	assert.Equal(t, bson.M{
		"score":   19.0,
		"comment": bson.M{"$literal": "good"},
	}, patches[2])

	// untouched criteria get no patch at all
	_, ok := patches[1]
	assert.False(t, ok)
}

func TestCriterionPatchesCombineSameIndex(t *testing.T) {
	patches := criterionPatches([]models.CriterionUpdate{
		{Index: 4, Score: floatPtr(17)},
		{Index: 4, Comment: strPtr("well presented")},
	})

	require.Len(t, patches, 1)
	assert.Equal(t, bson.M{
		"score":   17.0,
		"comment": bson.M{"$literal": "well presented"},
	}, patches[4])
}

func TestScoresPipelineDerivesTotalInSameUpdate(t *testing.T) {
	pipeline := scoresPipeline([]models.CriterionUpdate{
		{Index: 0, Score: floatPtr(18)},
	}, strPtr("strong work"), time.Now())

	require.Len(t, pipeline, 2, "merge stage plus total stage, one atomic update")

	// stage 1 rebuilds the criteria array and sets the final comment
	merge, ok := pipeline[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "$set", pipeline[0][0].Key)
	assert.Contains(t, merge, "criteria")
	assert.Contains(t, merge, "updatedAt")
	assert.Equal(t, bson.M{"$literal": "strong work"}, merge["finalComment"])

	// stage 2 derives totalScore from the document's own criteria, with
	// unset scores counting as 0. The sum is never computed from a caller
	// snapshot, so interleaved writers cannot persist a stale total.
	assert.Equal(t, "$set", pipeline[1][0].Key)
	recompute, ok := pipeline[1][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$sum": bson.M{"$map": bson.M{
		"input": "$criteria",
		"as":    "c",
		"in":    bson.M{"$ifNull": bson.A{"$$c.score", 0}},
	}}}, recompute["totalScore"])
}

func TestScoresPipelineLeavesOtherCriteriaUntouched(t *testing.T) {
	pipeline := scoresPipeline([]models.CriterionUpdate{
		{Index: 1, Score: floatPtr(17)},
		{Index: 3, Comment: strPtr("needs figures")},
	}, nil, time.Now())

	merge := pipeline[0][0].Value.(bson.M)

	// finalComment not supplied, must not be written
	_, ok := merge["finalComment"]
	assert.False(t, ok)

	// only the two touched indices get a merge branch; everything else
	// falls through to the stored element
	criteria := merge["criteria"].(bson.M)
	mapExpr := criteria["$map"].(bson.M)
	letExpr := mapExpr["in"].(bson.M)["$let"].(bson.M)
	switchExpr := letExpr["in"].(bson.M)["$switch"].(bson.M)

	branches := switchExpr["branches"].(bson.A)
	assert.Len(t, branches, 2)
	assert.Equal(t, "$$item", switchExpr["default"])

	touched := []int{}
	for _, b := range branches {
		caseExpr := b.(bson.M)["case"].(bson.M)["$eq"].(bson.A)
		touched = append(touched, caseExpr[1].(int))

		mergeExpr := b.(bson.M)["then"].(bson.M)["$mergeObjects"].(bson.A)
		assert.Equal(t, "$$item", mergeExpr[0], "stored fields must survive the merge")
	}
	assert.ElementsMatch(t, []int{1, 3}, touched)
}

func TestMissingCriterion(t *testing.T) {
	criteria := models.NewRubric()
	assert.Equal(t, models.RubricCriteria[0], missingCriterion(criteria))

	for i := range criteria {
		criteria[i].Score = floatPtr(10)
	}
	assert.Empty(t, missingCriterion(criteria))

	criteria[3].Score = nil
	assert.Equal(t, models.RubricCriteria[3], missingCriterion(criteria))
}
