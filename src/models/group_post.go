package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group post status. A filled post leaves the public feed automatically.
const (
	GroupPostActive   = "active"
	GroupPostFilled   = "filled"
	GroupPostArchived = "archived"
)

// GroupMember is one accepted member of a teammate-search post.
type GroupMember struct {
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	JoinedAt time.Time          `bson:"joinedAt" json:"joinedAt"`
}

// GroupPost โพสต์หาเพื่อนร่วมทีม - a "find a teammate" board entry.
type GroupPost struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectName    string             `bson:"projectName" json:"projectName"`
	Details        string             `bson:"details" json:"details"`
	Department     string             `bson:"department" json:"department"`
	MaxMembers     int                `bson:"maxMembers" json:"maxMembers"`
	CurrentMembers int                `bson:"currentMembers" json:"currentMembers"`
	SupervisorName string             `bson:"supervisorName" json:"supervisorName"`
	TechStack      []string           `bson:"techStack" json:"techStack"`
	PostedBy       primitive.ObjectID `bson:"postedBy" json:"postedBy"`
	Members        []GroupMember      `bson:"members" json:"members"`
	Status         string             `bson:"status" json:"status"`
	IsVisible      bool               `bson:"isVisible" json:"isVisible"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateGroupPostRequest opens a new teammate search.
type CreateGroupPostRequest struct {
	ProjectName    string   `json:"projectName" validate:"required"`
	Details        string   `json:"details" validate:"required"`
	Department     string   `json:"department" validate:"required"`
	MaxMembers     int      `json:"maxMembers" validate:"required,min=1"`
	SupervisorName string   `json:"supervisorName" validate:"required"`
	TechStack      []string `json:"techStack"`
}

// UpdateGroupPostRequest edits a post; nil fields stay untouched.
type UpdateGroupPostRequest struct {
	ProjectName    *string  `json:"projectName,omitempty"`
	Details        *string  `json:"details,omitempty"`
	Department     *string  `json:"department,omitempty"`
	MaxMembers     *int     `json:"maxMembers,omitempty"`
	SupervisorName *string  `json:"supervisorName,omitempty"`
	TechStack      []string `json:"techStack,omitempty"`
}
