package ports

import (
	"context"
	"errors"

	"sitecheck/internal/domain/assessment"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrQuestionNotFound   = errors.New("assessment question not found")
)

// QuestionUpdate carries a full replacement of the mutable fields of one
// question: answer, comment and the ordered evidence image list.
type QuestionUpdate struct {
	QuestionID string
	Answer     assessment.Answer
	Comment    *string
	Images     []string
	UpdatedAt  string
}

// AssessmentReadRepository is the query side of the store. Every read is
// scoped by owner: rows belonging to another owner are reported as not
// found, never returned.
type AssessmentReadRepository interface {
	GetAssessment(ctx context.Context, ownerID string, assessmentID string) (assessment.Assessment, error)
	ListAssessments(ctx context.Context, ownerID string) ([]assessment.Assessment, error)
	GetQuestion(ctx context.Context, ownerID string, assessmentID string, questionID string) (assessment.QuestionAnswer, error)
}

type AssessmentRepository interface {
	AssessmentReadRepository
	CreateAssessment(ctx context.Context, a assessment.Assessment) error
	CreateQuestions(ctx context.Context, questions []assessment.QuestionAnswer) error
	UpdateQuestion(ctx context.Context, update QuestionUpdate) error
	AddQuestionImage(ctx context.Context, questionID string, imageURL string, createdAt string) error
	MarkCompleted(ctx context.Context, assessmentID string, updatedAt string) error
}
