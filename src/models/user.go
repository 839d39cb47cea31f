package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles used for authorization. Distinct from the assessor roles
// shown on evaluation rubrics.
const (
	RoleStudent = "Student"
	RoleFaculty = "Faculty"
	RoleAdmin   = "Admin"
)

// User บัญชีผู้ใช้ - student, faculty or admin account
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	UniversityID string             `bson:"universityId" json:"universityId"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password,omitempty" json:"-"` // accepted from clients, never returned
	Role         string             `bson:"role" json:"role"`
	Department   string             `bson:"department" json:"department"`
	LastLogin    *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	UniversityID string `json:"universityId" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,oneof=Student Faculty Admin"`
	Department   string `json:"department"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest edits the caller's own profile fields.
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
}
