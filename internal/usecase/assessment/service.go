package assessment

import (
	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/ports"
)

// Service is the single mutation gateway for assessments. All reads go
// back to the store, so a confirmed write is immediately visible and no
// optimistic in-memory state can drift from what was persisted.
type Service struct {
	repo     ports.AssessmentRepository
	uow      ports.UnitOfWork
	storage  ports.ObjectStorage
	template domainassessment.Template
}

func NewService(
	repo ports.AssessmentRepository,
	uow ports.UnitOfWork,
	storage ports.ObjectStorage,
	template domainassessment.Template,
) *Service {
	return &Service{
		repo:     repo,
		uow:      uow,
		storage:  storage,
		template: template,
	}
}

type CreateInput struct {
	OwnerID string
	Subject string
}

type UpdateAnswerInput struct {
	OwnerID      string
	AssessmentID string
	QuestionID   string
	Answer       domainassessment.Answer
	Comment      *string
	Images       []string
}

type UploadEvidenceInput struct {
	OwnerID      string
	AssessmentID string
	QuestionID   string
	Data         []byte
}
