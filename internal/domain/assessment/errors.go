package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("actor identity is required")
	ErrSubjectRequired  = errors.New("subject label is required")
	ErrInvalidAnswer    = errors.New("invalid answer value")
	ErrEmptyTemplate    = errors.New("question template has no questions")
	ErrEmptyEvidence    = errors.New("evidence payload is empty")
	ErrInvalidEvidence  = errors.New("evidence payload is not a supported image")
)

// IncompleteError rejects completion while questions remain unanswered.
type IncompleteError struct {
	Remaining int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d questions remaining unanswered", e.Remaining)
}
