package model

// Component is a catalog entry belonging to exactly one category
type Component struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string `gorm:"column:title;not null"`
	Description string `gorm:"column:description;not null"`
	CategoryID  int64  `gorm:"column:category_id;not null"`
}

func (Component) TableName() string {
	return "components"
}
