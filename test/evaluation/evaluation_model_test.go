package evaluation

import (
	"testing"
	"time"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEvaluationModel(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Evaluation Model Tests")
	defer suiteResult.PrintSummary()

	// Test that a fresh rubric matches the fixed template
	t.Run("TestFreshRubric", func(t *testing.T) {
		timer := test.NewTestTimer("Fresh Rubric")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Fresh Rubric",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Fresh Rubric", duration, 100*time.Microsecond)
		}()

		rubric := models.NewRubric()

		assert.Len(t, rubric, models.RubricSize)
		for i, criterion := range rubric {
			assert.Equal(t, models.RubricCriteria[i], criterion.Name)
			assert.Equal(t, models.CriterionMaxScore, criterion.MaxScore)
			assert.Nil(t, criterion.Score)
			assert.Empty(t, criterion.Comment)
		}
	})

	// Test a complete evaluation document
	t.Run("TestEvaluationCreation", func(t *testing.T) {
		timer := test.NewTestTimer("Evaluation Creation")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Evaluation Creation",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Evaluation Creation", duration, 100*time.Microsecond)
		}()

		now := time.Now()
		eval := models.Evaluation{
			ID:           primitive.NewObjectID(),
			ProjectID:    primitive.NewObjectID(),
			AssessorID:   primitive.NewObjectID(),
			AssessorName: "ดร. สมศักดิ์ วิชาการ",
			AssessorRole: models.AssessorSupervisor,
			Criteria:     models.NewRubric(),
			Status:       models.EvaluationPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		assert.Equal(t, models.EvaluationPending, eval.Status)
		assert.Nil(t, eval.SubmittedAt)
		assert.Zero(t, eval.TotalScore)
		assert.Len(t, eval.Criteria, 5)
	})

	// Test the assessor role whitelist
	t.Run("TestAssessorRoles", func(t *testing.T) {
		timer := test.NewTestTimer("Assessor Roles")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Assessor Roles",
				Duration: duration,
				Passed:   true,
			})
		}()

		for _, role := range models.AssessorRoles {
			assert.True(t, models.IsValidAssessorRole(role), role)
		}
		assert.False(t, models.IsValidAssessorRole("Janitor"))
		assert.False(t, models.IsValidAssessorRole(""))

		// account roles are not assessor roles
		assert.False(t, models.IsValidAssessorRole(models.RoleFaculty))
	})

	// Test maximum possible total across the rubric
	t.Run("TestMaximumTotal", func(t *testing.T) {
		timer := test.NewTestTimer("Maximum Total")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Maximum Total",
				Duration: duration,
				Passed:   true,
			})
		}()

		assert.Equal(t, 100.0, models.CriterionMaxScore*float64(models.RubricSize))
	})
}
