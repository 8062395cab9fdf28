package model

type AssessmentQuestion struct {
	ID             string  `gorm:"column:id;type:text;primaryKey"`
	AssessmentID   string  `gorm:"column:assessment_id;type:text;not null;index"`
	QuestionNumber int     `gorm:"column:question_number;not null"`
	QuestionText   string  `gorm:"column:question_text;type:text;not null"`
	Answer         *string `gorm:"column:answer;type:text"`
	Comment        *string `gorm:"column:comment;type:text"`
	CreatedAt      string  `gorm:"column:created_at;type:text;not null"`
	UpdatedAt      string  `gorm:"column:updated_at;type:text;not null"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}
