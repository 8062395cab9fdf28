package assessment

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"sitecheck/internal/bootstrap/logging"
	domainassessment "sitecheck/internal/domain/assessment"
)

// Create persists a new assessment seeded from the question template.
// The assessment row and its full question batch go through one
// transaction: either the aggregate exists whole or not at all.
func (s *Service) Create(ctx context.Context, input CreateInput) (domainassessment.Assessment, error) {
	if err := s.checkCall(ctx); err != nil {
		return domainassessment.Assessment{}, err
	}
	if s.uow == nil {
		return domainassessment.Assessment{}, errors.New("unit of work is required")
	}

	owner, err := requireOwner(input.OwnerID)
	if err != nil {
		return domainassessment.Assessment{}, err
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return domainassessment.Assessment{}, domainassessment.ErrSubjectRequired
	}

	if s.template.Size() == 0 {
		return domainassessment.Assessment{}, domainassessment.ErrEmptyTemplate
	}

	now := nowUTCString()
	created := domainassessment.Assessment{
		ID:        newID(),
		OwnerID:   owner,
		Subject:   subject,
		Date:      todayUTCString(),
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	questions := make([]domainassessment.QuestionAnswer, 0, s.template.Size())
	for i, prompt := range s.template.Questions {
		questions = append(questions, domainassessment.QuestionAnswer{
			ID:           newID(),
			AssessmentID: created.ID,
			Ordinal:      i + 1,
			Prompt:       prompt,
			Answer:       domainassessment.AnswerUnanswered,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.CreateAssessment(txCtx, created); err != nil {
			return err
		}
		return s.repo.CreateQuestions(txCtx, questions)
	}); err != nil {
		return domainassessment.Assessment{}, err
	}

	logging.Info(ctx, "assessment created",
		slog.String("assessment_id", created.ID),
		slog.Int("questions", len(questions)),
	)

	created.Questions = questions
	return created, nil
}
