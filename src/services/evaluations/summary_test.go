package evaluations

import (
	"testing"
	"time"

	"Backend-CampusHub/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// scoredEvaluation builds a rubric-complete evaluation with the given
// per-criterion scores and status.
func scoredEvaluation(status string, scores [models.RubricSize]float64) models.Evaluation {
	criteria := models.NewRubric()
	var total float64
	for i := range criteria {
		criteria[i].Score = floatPtr(scores[i])
		total += scores[i]
	}

	eval := models.Evaluation{
		ID:           primitive.NewObjectID(),
		ProjectID:    primitive.NewObjectID(),
		AssessorID:   primitive.NewObjectID(),
		AssessorName: "Dr. Sarah Johnson",
		AssessorRole: models.AssessorSupervisor,
		Criteria:     criteria,
		TotalScore:   total,
		Status:       status,
	}
	if status == models.EvaluationSubmitted {
		now := time.Now()
		eval.SubmittedAt = &now
	}
	return eval
}

func TestBuildSummaryIgnoresPending(t *testing.T) {
	evals := []models.Evaluation{
		scoredEvaluation(models.EvaluationSubmitted, [5]float64{18, 17, 19, 16, 18}), // 88
		scoredEvaluation(models.EvaluationSubmitted, [5]float64{19, 18, 19, 17, 19}), // 92
		scoredEvaluation(models.EvaluationPending, [5]float64{20, 20, 20, 20, 20}),   // ignored
	}

	summary := buildSummary(evals)

	assert.Equal(t, 3, summary.TotalAssessors)
	assert.Equal(t, 2, summary.SubmittedCount)
	require.NotNil(t, summary.AverageScore)
	assert.Equal(t, 90.0, *summary.AverageScore)

	// the Pending evaluation must not appear in the entry list either
	assert.Len(t, summary.Evaluations, 2)
}

func TestBuildSummaryCriteriaAverages(t *testing.T) {
	evals := []models.Evaluation{
		scoredEvaluation(models.EvaluationSubmitted, [5]float64{18, 17, 19, 16, 18}),
		scoredEvaluation(models.EvaluationSubmitted, [5]float64{16, 17, 18, 15, 16}),
	}

	summary := buildSummary(evals)

	require.Len(t, summary.CriteriaAverages, models.RubricSize)
	expected := []float64{17, 17, 18.5, 15.5, 17}
	for i, avg := range summary.CriteriaAverages {
		assert.Equal(t, models.RubricCriteria[i], avg.Name, "criteria align by ordinal position")
		assert.Equal(t, expected[i], avg.Average)
	}
}

func TestBuildSummaryRoundsToTwoDecimals(t *testing.T) {
	evals := []models.Evaluation{
		scoredEvaluation(models.EvaluationSubmitted, [5]float64{18, 17, 19, 16, 18}), // 88
		scoredEvaluation(models.EvaluationSubmitted, [5]float64{19, 18, 19, 17, 19}), // 92
		scoredEvaluation(models.EvaluationSubmitted, [5]float64{16, 17, 18, 15, 16}), // 82
	}

	summary := buildSummary(evals)

	require.NotNil(t, summary.AverageScore)
	// (88 + 92 + 82) / 3 = 87.333...
	assert.Equal(t, 87.33, *summary.AverageScore)
}

func TestBuildSummaryNoEvaluations(t *testing.T) {
	summary := buildSummary(nil)

	assert.Equal(t, 0, summary.TotalAssessors)
	assert.Equal(t, 0, summary.SubmittedCount)
	assert.Nil(t, summary.AverageScore, "no submissions means no average, not zero")
	assert.Empty(t, summary.CriteriaAverages)
	assert.Empty(t, summary.Evaluations)
}

func TestBuildSummaryOnlyPending(t *testing.T) {
	evals := []models.Evaluation{
		scoredEvaluation(models.EvaluationPending, [5]float64{18, 17, 19, 16, 18}),
		scoredEvaluation(models.EvaluationPending, [5]float64{10, 10, 10, 10, 10}),
	}

	summary := buildSummary(evals)

	assert.Equal(t, 2, summary.TotalAssessors)
	assert.Equal(t, 0, summary.SubmittedCount)
	assert.Nil(t, summary.AverageScore)
	assert.Empty(t, summary.CriteriaAverages)
}
