package model

type Category struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

type SubCategory struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	CategoryID  int64  `gorm:"not null;index" json:"category_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (SubCategory) TableName() string {
	return "sub_categories"
}

// Tag 标签，名称统一小写存储
type Tag struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}
