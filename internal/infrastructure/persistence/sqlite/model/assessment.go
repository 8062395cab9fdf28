package model

type Assessment struct {
	ID        string `gorm:"column:id;type:text;primaryKey"`
	UserID    string `gorm:"column:user_id;type:text;not null;index"`
	StoreName string `gorm:"column:store_name;type:text;not null"`
	Date      string `gorm:"column:date;type:text;not null"`
	Completed bool   `gorm:"column:completed;not null;default:0"`
	CreatedAt string `gorm:"column:created_at;type:text;not null"`
	UpdatedAt string `gorm:"column:updated_at;type:text;not null"`
}

func (Assessment) TableName() string {
	return "assessments"
}
