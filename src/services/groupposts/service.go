package groupposts

import (
	"context"
	"errors"
	"time"

	DB "Backend-CampusHub/src/database"
	"Backend-CampusHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrPostNotFound        = errors.New("group post not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied to this group post")
	ErrPostFilled          = errors.New("this group is already filled")
	ErrAlreadyDecided      = errors.New("application has already been decided")
)

// CreatePost opens a teammate search. The poster joins as the first member.
func CreatePost(ctx context.Context, postedBy primitive.ObjectID, req *models.CreateGroupPostRequest) (*models.GroupPost, error) {
	now := time.Now()
	post := &models.GroupPost{
		ID:             primitive.NewObjectID(),
		ProjectName:    req.ProjectName,
		Details:        req.Details,
		Department:     req.Department,
		MaxMembers:     req.MaxMembers,
		SupervisorName: req.SupervisorName,
		TechStack:      req.TechStack,
		PostedBy:       postedBy,
		Members:        []models.GroupMember{{UserID: postedBy, JoinedAt: now}},
		CurrentMembers: 1,
		Status:         models.GroupPostActive,
		IsVisible:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if post.TechStack == nil {
		post.TechStack = []string{}
	}
	refreshFillState(post)

	_, err := DB.GroupPostCollection.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// refreshFillState derives member count and visibility. A filled post
// drops out of the public feed.
func refreshFillState(post *models.GroupPost) {
	post.CurrentMembers = len(post.Members)
	if post.CurrentMembers >= post.MaxMembers && post.Status == models.GroupPostActive {
		post.Status = models.GroupPostFilled
		post.IsVisible = false
	}
}

// GetPublicPosts returns the public feed: visible, active posts only.
func GetPublicPosts(ctx context.Context) ([]models.GroupPost, error) {
	return findPosts(ctx, bson.M{"isVisible": true, "status": models.GroupPostActive})
}

// GetPostsByUser returns every post a user created, newest first.
func GetPostsByUser(ctx context.Context, userID string) ([]models.GroupPost, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return findPosts(ctx, bson.M{"postedBy": objID})
}

func findPosts(ctx context.Context, filter bson.M) ([]models.GroupPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.GroupPostCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.GroupPost{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostByID fetches one post.
func GetPostByID(ctx context.Context, id string) (*models.GroupPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid group post ID")
	}

	var post models.GroupPost
	err = DB.GroupPostCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// UpdatePost overwrites only the supplied fields.
func UpdatePost(ctx context.Context, id string, req *models.UpdateGroupPostRequest) (*models.GroupPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid group post ID")
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.ProjectName != nil {
		set["projectName"] = *req.ProjectName
	}
	if req.Details != nil {
		set["details"] = *req.Details
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.MaxMembers != nil {
		set["maxMembers"] = *req.MaxMembers
	}
	if req.SupervisorName != nil {
		set["supervisorName"] = *req.SupervisorName
	}
	if req.TechStack != nil {
		set["techStack"] = req.TechStack
	}

	result, err := DB.GroupPostCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrPostNotFound
	}

	return GetPostByID(ctx, id)
}

// ArchivePost hides a post from the feed without deleting its history.
func ArchivePost(ctx context.Context, id string) (*models.GroupPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid group post ID")
	}

	result, err := DB.GroupPostCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": models.GroupPostArchived, "isVisible": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrPostNotFound
	}

	return GetPostByID(ctx, id)
}

// DeletePost removes a post and every application attached to it.
func DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid group post ID")
	}

	result, err := DB.GroupPostCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPostNotFound
	}

	_, err = DB.ApplicationCollection.DeleteMany(ctx, bson.M{"groupPostId": objID})
	return err
}

// Apply submits an application to an active post. The unique
// (groupPostId, applicantId) index blocks duplicates atomically.
func Apply(ctx context.Context, applicantID primitive.ObjectID, req *models.ApplyRequest) (*models.Application, error) {
	post, err := GetPostByID(ctx, req.GroupPostID)
	if err != nil {
		return nil, err
	}
	if post.Status != models.GroupPostActive {
		return nil, ErrPostFilled
	}

	now := time.Now()
	application := &models.Application{
		ID:          primitive.NewObjectID(),
		GroupPostID: post.ID,
		ApplicantID: applicantID,
		Message:     req.Message,
		Status:      models.ApplicationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = DB.ApplicationCollection.InsertOne(ctx, application)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	return application, nil
}

// GetApplicationsByPost lists every application for one post.
func GetApplicationsByPost(ctx context.Context, postID string) ([]models.Application, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, errors.New("invalid group post ID")
	}

	cursor, err := DB.ApplicationCollection.Find(ctx, bson.M{"groupPostId": objID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	applications := []models.Application{}
	if err = cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// DecideApplication approves or rejects a pending application. Approval
// adds the applicant to the post's members and refreshes the fill state.
func DecideApplication(ctx context.Context, applicationID string, approve bool) (*models.Application, error) {
	objID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return nil, errors.New("invalid application ID")
	}

	var application models.Application
	err = DB.ApplicationCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&application)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if application.Status != models.ApplicationPending {
		return nil, ErrAlreadyDecided
	}

	status := models.ApplicationRejected
	if approve {
		post, err := GetPostByID(ctx, application.GroupPostID.Hex())
		if err != nil {
			return nil, err
		}
		if post.Status != models.GroupPostActive {
			return nil, ErrPostFilled
		}

		status = models.ApplicationApproved
		post.Members = append(post.Members, models.GroupMember{
			UserID:   application.ApplicantID,
			JoinedAt: time.Now(),
		})
		refreshFillState(post)

		_, err = DB.GroupPostCollection.UpdateOne(ctx,
			bson.M{"_id": post.ID},
			bson.M{"$set": bson.M{
				"members":        post.Members,
				"currentMembers": post.CurrentMembers,
				"status":         post.Status,
				"isVisible":      post.IsVisible,
				"updatedAt":      time.Now(),
			}},
		)
		if err != nil {
			return nil, err
		}
	}

	_, err = DB.ApplicationCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	application.Status = status
	return &application, nil
}
