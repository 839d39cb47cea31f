package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project lifecycle status.
const (
	ProjectProposal    = "proposal"
	ProjectInProgress  = "in-progress"
	ProjectUnderReview = "under_review"
	ProjectCompleted   = "completed"
)

// Project stage - which deliverable the team is working toward.
const (
	StageProposal = "proposal"
	StageMidterm  = "midterm"
	StageFinal    = "final"
)

// ProjectStatuses and ProjectStages list the valid enum values.
var (
	ProjectStatuses = []string{ProjectProposal, ProjectInProgress, ProjectUnderReview, ProjectCompleted}
	ProjectStages   = []string{StageProposal, StageMidterm, StageFinal}
)

// ProjectSubmission is one entry of the staged upload history.
type ProjectSubmission struct {
	UploadedBy primitive.ObjectID `bson:"uploadedBy" json:"uploadedBy"`
	UploadedAt time.Time          `bson:"uploadedAt" json:"uploadedAt"`
	FileURL    string             `bson:"fileUrl" json:"fileUrl"`
	Notes      string             `bson:"notes" json:"notes"`
	Stage      string             `bson:"stage" json:"stage"`
}

// Project โปรเจกต์ของนักศึกษา - an academic project with staged progress.
type Project struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title          string               `bson:"title" json:"title"`
	Description    string               `bson:"description" json:"description"`
	Department     string               `bson:"department" json:"department"`
	Tags           []string             `bson:"tags" json:"tags"`
	Members        []primitive.ObjectID `bson:"members" json:"members"`
	CreatedBy      primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	SupervisorName string               `bson:"supervisorName" json:"supervisorName"`
	Status         string               `bson:"status" json:"status"`
	Stage          string               `bson:"stage" json:"stage"`
	Submissions    []ProjectSubmission  `bson:"submissions" json:"submissions"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// CreateProjectRequest registers a new project.
type CreateProjectRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Department     string   `json:"department"`
	Tags           []string `json:"tags"`
	SupervisorName string   `json:"supervisorName"`
}

// UpdateProjectRequest edits project fields; nil fields stay untouched.
type UpdateProjectRequest struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Department     *string  `json:"department,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	SupervisorName *string  `json:"supervisorName,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Stage          *string  `json:"stage,omitempty"`
}

// AddSubmissionRequest appends one upload to the progress history.
type AddSubmissionRequest struct {
	FileURL string `json:"fileUrl" validate:"required"`
	Notes   string `json:"notes"`
	Stage   string `json:"stage" validate:"required,oneof=proposal midterm final"`
}
