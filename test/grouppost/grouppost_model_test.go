package grouppost

import (
	"testing"
	"time"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGroupPostModel(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Group Post Model Tests")
	defer suiteResult.PrintSummary()

	// Test basic post creation
	t.Run("TestBasicPostCreation", func(t *testing.T) {
		timer := test.NewTestTimer("Basic Post Creation")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Basic Post Creation",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Basic Post Creation", duration, 100*time.Microsecond)
		}()

		poster := primitive.NewObjectID()
		post := models.GroupPost{
			ProjectName:    "ระบบแนะนำวิชาเลือก",
			Details:        "Looking for a backend dev and a designer",
			Department:     "Computer Science",
			MaxMembers:     4,
			CurrentMembers: 1,
			SupervisorName: "Dr. Anan",
			TechStack:      []string{"Go", "Vue"},
			PostedBy:       poster,
			Members:        []models.GroupMember{{UserID: poster, JoinedAt: time.Now()}},
			Status:         models.GroupPostActive,
			IsVisible:      true,
		}

		assert.Equal(t, models.GroupPostActive, post.Status)
		assert.True(t, post.IsVisible)
		assert.Equal(t, 1, post.CurrentMembers)
		assert.Len(t, post.Members, 1)
		assert.Equal(t, poster, post.Members[0].UserID)
	})

	// Test application status values
	t.Run("TestApplicationStatuses", func(t *testing.T) {
		timer := test.NewTestTimer("Application Statuses")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Application Statuses",
				Duration: duration,
				Passed:   true,
			})
		}()

		application := models.Application{
			GroupPostID: primitive.NewObjectID(),
			ApplicantID: primitive.NewObjectID(),
			Message:     "I have Fiber experience",
			Status:      models.ApplicationPending,
		}

		assert.Equal(t, "pending", application.Status)
		assert.Equal(t, "approved", models.ApplicationApproved)
		assert.Equal(t, "rejected", models.ApplicationRejected)
	})

	// Test the filled condition that hides a post from the feed
	t.Run("TestFilledCondition", func(t *testing.T) {
		timer := test.NewTestTimer("Filled Condition")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Filled Condition",
				Duration: duration,
				Passed:   true,
			})
		}()

		post := models.GroupPost{MaxMembers: 3, CurrentMembers: 2}
		assert.Less(t, post.CurrentMembers, post.MaxMembers)

		post.CurrentMembers = 3
		assert.GreaterOrEqual(t, post.CurrentMembers, post.MaxMembers)
	})
}
