package model

// Sequence preserves append order; created_at alone is not unique enough
// when two uploads land in the same instant.
type QuestionImage struct {
	ID         string `gorm:"column:id;type:text;primaryKey"`
	QuestionID string `gorm:"column:question_id;type:text;not null;index"`
	ImageURL   string `gorm:"column:image_url;type:text;not null"`
	Sequence   int    `gorm:"column:sequence;not null"`
	CreatedAt  string `gorm:"column:created_at;type:text;not null"`
}

func (QuestionImage) TableName() string {
	return "question_images"
}
