package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Evaluation lifecycle. Submission is terminal: there is no path back to
// Pending, only an administrative delete.
const (
	EvaluationPending   = "Pending"
	EvaluationSubmitted = "Submitted"
)

// Assessor roles shown on the rubric. These are NOT the account roles used
// for authorization (Student/Faculty/Admin) - the two enums are distinct.
const (
	AssessorSupervisor   = "Supervisor"
	AssessorCoSupervisor = "Co-Supervisor"
	AssessorStudentTutor = "ST"
	AssessorResearchAsst = "RA"
	AssessorTeachingAsst = "TA"
	AssessorExternal     = "External Examiner"
)

// AssessorRoles lists every valid rubric role.
var AssessorRoles = []string{
	AssessorSupervisor,
	AssessorCoSupervisor,
	AssessorStudentTutor,
	AssessorResearchAsst,
	AssessorTeachingAsst,
	AssessorExternal,
}

// CriterionMaxScore is fixed across the rubric: 5 criteria x 20 = 100 points.
const CriterionMaxScore = 20.0

// RubricSize is a hard invariant - every evaluation has exactly 5 criteria.
const RubricSize = 5

// RubricCriteria are the standard criterion names, in rubric order.
var RubricCriteria = [RubricSize]string{
	"Problem Understanding & Analysis",
	"Technical Implementation & Code Quality",
	"Innovation & Creativity",
	"Documentation & Clarity",
	"Presentation & Communication (Viva)",
}

// Criterion is one rubric line item. Score stays nil until the assessor
// enters it.
type Criterion struct {
	Name     string   `bson:"name" json:"name"`
	MaxScore float64  `bson:"maxScore" json:"maxScore"`
	Score    *float64 `bson:"score,omitempty" json:"score,omitempty"`
	Comment  string   `bson:"comment" json:"comment"`
}

// Evaluation is one assessor scoring one project. AssessorName and
// AssessorRole are snapshots taken at assignment time and never re-synced,
// so the record keeps its "as evaluated at the time" meaning.
type Evaluation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID    primitive.ObjectID `bson:"projectId" json:"projectId"`
	AssessorID   primitive.ObjectID `bson:"assessorId" json:"assessorId"`
	AssessorName string             `bson:"assessorName" json:"assessorName"`
	AssessorRole string             `bson:"assessorRole" json:"assessorRole"`
	Criteria     []Criterion        `bson:"criteria" json:"criteria"`
	FinalComment string             `bson:"finalComment" json:"finalComment"`
	TotalScore   float64            `bson:"totalScore" json:"totalScore"`
	Status       string             `bson:"status" json:"status"`
	SubmittedAt  *time.Time         `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateEvaluationRequest assigns an assessor to a project.
type CreateEvaluationRequest struct {
	ProjectID    string `json:"projectId" validate:"required"`
	AssessorRole string `json:"assessorRole" validate:"required"`
	AssessorName string `json:"assessorName"`
}

// CriterionUpdate carries a partial edit of one criterion, matched by
// rubric position.
type CriterionUpdate struct {
	Index   int      `json:"index" validate:"gte=0,lte=4"`
	Score   *float64 `json:"score,omitempty"`
	Comment *string  `json:"comment,omitempty"`
}

// RecordScoresRequest updates a subset of criteria while the evaluation
// is still Pending.
type RecordScoresRequest struct {
	Criteria     []CriterionUpdate `json:"criteria" validate:"required,min=1,max=5,dive"`
	FinalComment *string           `json:"finalComment,omitempty"`
}

// CriterionAverage is one line of the per-criterion breakdown in a summary.
type CriterionAverage struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// EvaluationSummaryEntry is the per-assessor line in a project summary.
type EvaluationSummaryEntry struct {
	ID           primitive.ObjectID `json:"id"`
	AssessorName string             `json:"assessorName"`
	AssessorRole string             `json:"assessorRole"`
	TotalScore   float64            `json:"totalScore"`
	SubmittedAt  *time.Time         `json:"submittedAt,omitempty"`
}

// EvaluationSummary is computed on demand and never persisted. AverageScore
// is nil (not zero) when no evaluation has been submitted yet.
type EvaluationSummary struct {
	TotalAssessors   int                      `json:"totalAssessors"`
	SubmittedCount   int                      `json:"submittedCount"`
	AverageScore     *float64                 `json:"averageScore"`
	CriteriaAverages []CriterionAverage       `json:"criteriaAverages"`
	Evaluations      []EvaluationSummaryEntry `json:"evaluations"`
}

// NewRubric returns the fixed 5-entry criterion template with all scores
// unset. This is the only way criteria come into existence.
func NewRubric() []Criterion {
	criteria := make([]Criterion, RubricSize)
	for i, name := range RubricCriteria {
		criteria[i] = Criterion{
			Name:     name,
			MaxScore: CriterionMaxScore,
			Comment:  "",
		}
	}
	return criteria
}

// IsValidAssessorRole reports whether role is one of the rubric roles.
func IsValidAssessorRole(role string) bool {
	for _, r := range AssessorRoles {
		if r == role {
			return true
		}
	}
	return false
}
