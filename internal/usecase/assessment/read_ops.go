package assessment

import (
	"context"

	domainassessment "sitecheck/internal/domain/assessment"
)

// Get loads one hydrated assessment. Missing and foreign assessments are
// both not found; existence of other owners' data is never disclosed.
func (s *Service) Get(ctx context.Context, ownerID string, assessmentID string) (domainassessment.Assessment, error) {
	if err := s.checkCall(ctx); err != nil {
		return domainassessment.Assessment{}, err
	}

	owner, err := requireOwner(ownerID)
	if err != nil {
		return domainassessment.Assessment{}, err
	}

	return s.repo.GetAssessment(ctx, owner, assessmentID)
}

// List returns the owner's assessments, most recent first, hydrated.
func (s *Service) List(ctx context.Context, ownerID string) ([]domainassessment.Assessment, error) {
	if err := s.checkCall(ctx); err != nil {
		return nil, err
	}

	owner, err := requireOwner(ownerID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListAssessments(ctx, owner)
}

// Result computes the compliance score on demand; nothing is cached.
func (s *Service) Result(ctx context.Context, ownerID string, assessmentID string) (domainassessment.Result, error) {
	loaded, err := s.Get(ctx, ownerID, assessmentID)
	if err != nil {
		return domainassessment.Result{}, err
	}
	return domainassessment.Calculate(loaded), nil
}
