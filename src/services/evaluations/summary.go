package evaluations

import (
	"math"

	"Backend-CampusHub/src/models"
)

// buildSummary aggregates a project's evaluations. Only Submitted
// evaluations count toward the averages; Pending ones only show up in
// totalAssessors. With zero submissions the average is nil, not 0 -
// "no data yet" and "scored zero" must stay distinguishable.
func buildSummary(evals []models.Evaluation) *models.EvaluationSummary {
	summary := &models.EvaluationSummary{
		TotalAssessors:   len(evals),
		CriteriaAverages: []models.CriterionAverage{},
		Evaluations:      []models.EvaluationSummaryEntry{},
	}

	var submitted []models.Evaluation
	for _, eval := range evals {
		if eval.Status == models.EvaluationSubmitted {
			submitted = append(submitted, eval)
			summary.Evaluations = append(summary.Evaluations, models.EvaluationSummaryEntry{
				ID:           eval.ID,
				AssessorName: eval.AssessorName,
				AssessorRole: eval.AssessorRole,
				TotalScore:   eval.TotalScore,
				SubmittedAt:  eval.SubmittedAt,
			})
		}
	}

	summary.SubmittedCount = len(submitted)
	if len(submitted) == 0 {
		return summary
	}

	var totalSum float64
	for _, eval := range submitted {
		totalSum += eval.TotalScore
	}
	average := round2(totalSum / float64(len(submitted)))
	summary.AverageScore = &average

	// All evaluations share the same rubric shape, so criteria align by
	// ordinal position across assessors.
	for i := 0; i < models.RubricSize; i++ {
		var sum float64
		var count int
		for _, eval := range submitted {
			if i < len(eval.Criteria) && eval.Criteria[i].Score != nil {
				sum += *eval.Criteria[i].Score
				count++
			}
		}
		if count == 0 {
			continue
		}
		summary.CriteriaAverages = append(summary.CriteriaAverages, models.CriterionAverage{
			Name:    submitted[0].Criteria[i].Name,
			Average: round2(sum / float64(count)),
		})
	}

	return summary
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
