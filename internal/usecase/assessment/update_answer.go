package assessment

import (
	"context"
	"errors"

	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/ports"
)

// UpdateAnswer replaces the answer, comment and evidence-image list of a
// single question. The question must belong to the given assessment and
// the assessment to the caller; a mismatched pair is rejected before any
// write. The answer update and image replacement share one transaction.
func (s *Service) UpdateAnswer(ctx context.Context, input UpdateAnswerInput) (domainassessment.QuestionAnswer, error) {
	if err := s.checkCall(ctx); err != nil {
		return domainassessment.QuestionAnswer{}, err
	}
	if s.uow == nil {
		return domainassessment.QuestionAnswer{}, errors.New("unit of work is required")
	}

	owner, err := requireOwner(input.OwnerID)
	if err != nil {
		return domainassessment.QuestionAnswer{}, err
	}

	if _, err := s.repo.GetQuestion(ctx, owner, input.AssessmentID, input.QuestionID); err != nil {
		return domainassessment.QuestionAnswer{}, err
	}

	update := ports.QuestionUpdate{
		QuestionID: input.QuestionID,
		Answer:     input.Answer,
		Comment:    input.Comment,
		Images:     input.Images,
		UpdatedAt:  nowUTCString(),
	}
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.UpdateQuestion(txCtx, update)
	}); err != nil {
		return domainassessment.QuestionAnswer{}, err
	}

	// Re-read after the confirmed write; the caller sees exactly what was
	// persisted, never an unconfirmed local mutation.
	return s.repo.GetQuestion(ctx, owner, input.AssessmentID, input.QuestionID)
}
