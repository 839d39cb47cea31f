package reservation

import (
	"testing"
	"time"

	"Backend-CampusHub/src/models"
	"Backend-CampusHub/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func validRequest() models.CreateReservationRequest {
	return models.CreateReservationRequest{
		Type:         models.ResourceMeetingRoom,
		ResourceName: "Room 7B-16",
		Date:         "2026-09-01",
		StartTime:    "09:00",
		EndTime:      "11:00",
		Purpose:      "Project meeting",
		Attendees:    4,
	}
}

func TestReservationValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Reservation Validation Tests")
	defer suiteResult.PrintSummary()

	// Test a fully valid booking request
	t.Run("TestValidRequest", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Request")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Valid Request",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Valid Request", duration, 5*time.Millisecond)
		}()

		req := validRequest()
		assert.NoError(t, validate.Struct(&req))
	})

	// Test rejection of unknown resource types
	t.Run("TestInvalidResourceType", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Resource Type")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Invalid Resource Type",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := validRequest()
		req.Type = "rooftop"
		assert.Error(t, validate.Struct(&req))
	})

	// Test rejection of malformed date and time strings
	t.Run("TestMalformedDateTime", func(t *testing.T) {
		timer := test.NewTestTimer("Malformed DateTime")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Malformed DateTime",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := validRequest()
		req.Date = "01/09/2026"
		assert.Error(t, validate.Struct(&req))

		req = validRequest()
		req.StartTime = "9am"
		assert.Error(t, validate.Struct(&req))
	})

	// Test the overlap filter semantics: HH:MM strings compare correctly
	// lexicographically, which is what the availability query relies on
	t.Run("TestTimeStringOrdering", func(t *testing.T) {
		timer := test.NewTestTimer("Time String Ordering")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Time String Ordering",
				Duration: duration,
				Passed:   true,
			})
		}()

		assert.True(t, "09:00" < "11:00")
		assert.True(t, "09:30" < "10:00")
		assert.False(t, "13:00" < "09:00")

		// adjacent bookings do not overlap: [09:00,11:00) then [11:00,13:00)
		existingStart, existingEnd := "09:00", "11:00"
		newStart, newEnd := "11:00", "13:00"
		overlaps := existingStart < newEnd && existingEnd > newStart
		assert.False(t, overlaps)

		// contained interval overlaps
		newStart, newEnd = "09:30", "10:00"
		overlaps = existingStart < newEnd && existingEnd > newStart
		assert.True(t, overlaps)
	})
}
