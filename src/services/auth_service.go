package services

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-CampusHub/src/database"
	"Backend-CampusHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterUser creates a new account with a bcrypt-hashed password.
// Email uniqueness is enforced by the unique index on users.email.
func RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		UniversityID: req.UniversityID,
		Email:        strings.ToLower(req.Email),
		Password:     string(hash),
		Role:         req.Role,
		Department:   req.Department,
		CreatedAt:    time.Now(),
	}

	_, err = DB.UserCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// AuthenticateUser checks credentials and stamps lastLogin on success.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	_, _ = DB.UserCollection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"lastLogin": now}})
	user.LastLogin = &now

	user.Password = ""
	return &user, nil
}
