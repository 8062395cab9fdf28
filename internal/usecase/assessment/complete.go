package assessment

import (
	"context"
	"log/slog"

	"sitecheck/internal/bootstrap/logging"
	domainassessment "sitecheck/internal/domain/assessment"
)

// Complete marks the assessment finished once every question is answered.
// Completing an already-completed assessment is a no-op success; there is
// no way back from completed.
func (s *Service) Complete(ctx context.Context, ownerID string, assessmentID string) error {
	if err := s.checkCall(ctx); err != nil {
		return err
	}

	owner, err := requireOwner(ownerID)
	if err != nil {
		return err
	}

	loaded, err := s.repo.GetAssessment(ctx, owner, assessmentID)
	if err != nil {
		return err
	}

	if loaded.Completed {
		return nil
	}

	if remaining := domainassessment.CountUnanswered(loaded); remaining > 0 {
		return &domainassessment.IncompleteError{Remaining: remaining}
	}

	if err := s.repo.MarkCompleted(ctx, loaded.ID, nowUTCString()); err != nil {
		return err
	}

	logging.Info(ctx, "assessment completed", slog.String("assessment_id", loaded.ID))
	return nil
}
