package model

// Category is a named grouping of catalog components
type Category struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title string `gorm:"column:title;not null;unique"`
}

func (Category) TableName() string {
	return "categories"
}
