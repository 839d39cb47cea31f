package evaluations

import (
	"errors"
	"fmt"
)

// Business-rule failures. Controllers map these onto HTTP statuses
// (404 / 409 / 400); none of them are transient, so nothing here is
// ever retried by the service itself.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrAlreadyAssigned    = errors.New("assessor is already assigned to evaluate this project")
	ErrAlreadySubmitted   = errors.New("evaluation has already been submitted")
)

// ValidationError reports malformed input. Criterion names the offending
// rubric entry when the failure is score-related.
type ValidationError struct {
	Criterion string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Criterion != "" {
		return fmt.Sprintf("validation failed for criterion %q: %s", e.Criterion, e.Reason)
	}
	return "validation failed: " + e.Reason
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
