package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sitecheck/internal/domain/assessment"
	"sitecheck/internal/errs"
	"sitecheck/internal/infrastructure/persistence/sqlite/model"
	"sitecheck/internal/ports"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *AssessmentRepository) GetAssessment(ctx context.Context, ownerID string, assessmentID string) (assessment.Assessment, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return assessment.Assessment{}, err
	}

	var row model.Assessment
	if err := db.
		Where("id = ? AND user_id = ?", assessmentID, ownerID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assessment.Assessment{}, ports.ErrAssessmentNotFound
		}
		return assessment.Assessment{}, errs.Wrap(err, "query assessment")
	}

	questions, err := r.loadQuestions(db, []string{row.ID})
	if err != nil {
		return assessment.Assessment{}, err
	}

	out := mapAssessment(row)
	out.Questions = questions[row.ID]
	return out, nil
}

func (r *AssessmentRepository) ListAssessments(ctx context.Context, ownerID string) ([]assessment.Assessment, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Assessment
	if err := db.
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query assessments")
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	questions, err := r.loadQuestions(db, ids)
	if err != nil {
		return nil, err
	}

	items := make([]assessment.Assessment, 0, len(rows))
	for _, row := range rows {
		item := mapAssessment(row)
		item.Questions = questions[row.ID]
		items = append(items, item)
	}
	return items, nil
}

func (r *AssessmentRepository) GetQuestion(ctx context.Context, ownerID string, assessmentID string, questionID string) (assessment.QuestionAnswer, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return assessment.QuestionAnswer{}, err
	}

	// Ownership is checked on the parent first so a foreign assessment is
	// indistinguishable from a missing one.
	var count int64
	if err := db.Model(&model.Assessment{}).
		Where("id = ? AND user_id = ?", assessmentID, ownerID).
		Count(&count).Error; err != nil {
		return assessment.QuestionAnswer{}, errs.Wrap(err, "check assessment ownership")
	}
	if count == 0 {
		return assessment.QuestionAnswer{}, ports.ErrAssessmentNotFound
	}

	var row model.AssessmentQuestion
	if err := db.
		Where("id = ? AND assessment_id = ?", questionID, assessmentID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assessment.QuestionAnswer{}, ports.ErrQuestionNotFound
		}
		return assessment.QuestionAnswer{}, errs.Wrap(err, "query assessment question")
	}

	images, err := r.loadImages(db, []string{row.ID})
	if err != nil {
		return assessment.QuestionAnswer{}, err
	}

	out := mapQuestion(row)
	out.Images = images[row.ID]
	return out, nil
}

func (r *AssessmentRepository) CreateAssessment(ctx context.Context, a assessment.Assessment) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	row := model.Assessment{
		ID:        a.ID,
		UserID:    a.OwnerID,
		StoreName: a.Subject,
		Date:      a.Date,
		Completed: a.Completed,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert assessment")
	}
	return nil
}

func (r *AssessmentRepository) CreateQuestions(ctx context.Context, questions []assessment.QuestionAnswer) error {
	if len(questions) == 0 {
		return nil
	}

	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	rows := make([]model.AssessmentQuestion, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, model.AssessmentQuestion{
			ID:             q.ID,
			AssessmentID:   q.AssessmentID,
			QuestionNumber: q.Ordinal,
			QuestionText:   q.Prompt,
			Answer:         answerToColumn(q.Answer),
			Comment:        q.Comment,
			CreatedAt:      q.CreatedAt,
			UpdatedAt:      q.UpdatedAt,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return errs.Wrap(err, "insert assessment questions")
	}
	return nil
}

func (r *AssessmentRepository) UpdateQuestion(ctx context.Context, update ports.QuestionUpdate) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.AssessmentQuestion{}).
		Where("id = ?", update.QuestionID).
		Updates(map[string]any{
			"answer":     answerToColumn(update.Answer),
			"comment":    update.Comment,
			"updated_at": update.UpdatedAt,
		})
	if result.Error != nil {
		return errs.Wrap(result.Error, "update assessment question")
	}
	if result.RowsAffected == 0 {
		return ports.ErrQuestionNotFound
	}

	// Full image-list replacement: clear and re-insert in caller order.
	if err := db.
		Where("question_id = ?", update.QuestionID).
		Delete(&model.QuestionImage{}).Error; err != nil {
		return errs.Wrap(err, "clear question images")
	}

	for i, url := range update.Images {
		row := model.QuestionImage{
			ID:         newImageRowID(),
			QuestionID: update.QuestionID,
			ImageURL:   url,
			Sequence:   i + 1,
			CreatedAt:  update.UpdatedAt,
		}
		if err := db.Create(&row).Error; err != nil {
			return errs.Wrap(err, "insert question image")
		}
	}
	return nil
}

func (r *AssessmentRepository) AddQuestionImage(ctx context.Context, questionID string, imageURL string, createdAt string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	var maxSeq int
	if err := db.Model(&model.QuestionImage{}).
		Where("question_id = ?", questionID).
		Select("coalesce(max(sequence), 0)").
		Scan(&maxSeq).Error; err != nil {
		return errs.Wrap(err, "query image sequence")
	}

	row := model.QuestionImage{
		ID:         newImageRowID(),
		QuestionID: questionID,
		ImageURL:   imageURL,
		Sequence:   maxSeq + 1,
		CreatedAt:  createdAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert question image")
	}
	return nil
}

func (r *AssessmentRepository) MarkCompleted(ctx context.Context, assessmentID string, updatedAt string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.Assessment{}).
		Where("id = ?", assessmentID).
		Updates(map[string]any{
			"completed":  true,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return errs.Wrap(result.Error, "mark assessment completed")
	}
	if result.RowsAffected == 0 {
		return ports.ErrAssessmentNotFound
	}
	return nil
}

// loadQuestions hydrates the question batches for the given assessments,
// ordered by ordinal, with evidence images in append order.
func (r *AssessmentRepository) loadQuestions(db *gorm.DB, assessmentIDs []string) (map[string][]assessment.QuestionAnswer, error) {
	out := make(map[string][]assessment.QuestionAnswer, len(assessmentIDs))
	if len(assessmentIDs) == 0 {
		return out, nil
	}

	var rows []model.AssessmentQuestion
	if err := db.
		Where("assessment_id IN ?", assessmentIDs).
		Order("question_number asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query assessment questions")
	}

	questionIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		questionIDs = append(questionIDs, row.ID)
	}

	images, err := r.loadImages(db, questionIDs)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		q := mapQuestion(row)
		q.Images = images[row.ID]
		out[row.AssessmentID] = append(out[row.AssessmentID], q)
	}
	return out, nil
}

func (r *AssessmentRepository) loadImages(db *gorm.DB, questionIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}

	var rows []model.QuestionImage
	if err := db.
		Where("question_id IN ?", questionIDs).
		Order("sequence asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query question images")
	}

	for _, row := range rows {
		out[row.QuestionID] = append(out[row.QuestionID], row.ImageURL)
	}
	return out, nil
}

func mapAssessment(row model.Assessment) assessment.Assessment {
	return assessment.Assessment{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Subject:   row.StoreName,
		Date:      row.Date,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// mapQuestion validates the answer column instead of trusting it; an
// unknown value degrades to unanswered rather than poisoning the score.
func mapQuestion(row model.AssessmentQuestion) assessment.QuestionAnswer {
	answer := assessment.AnswerUnanswered
	if row.Answer != nil {
		if parsed, err := assessment.ParseAnswer(*row.Answer); err == nil {
			answer = parsed
		}
	}

	return assessment.QuestionAnswer{
		ID:           row.ID,
		AssessmentID: row.AssessmentID,
		Ordinal:      row.QuestionNumber,
		Prompt:       row.QuestionText,
		Answer:       answer,
		Comment:      row.Comment,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func answerToColumn(a assessment.Answer) *string {
	if !a.Answered() {
		return nil
	}
	s := string(a)
	return &s
}
