package model

import (
	"time"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	StoryID   int64     `gorm:"not null;index" json:"story_id"`
	AuthorID  int64     `gorm:"not null;index" json:"author_id"`
	ParentID  *int64    `gorm:"index" json:"parent_id,omitempty"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ReadCount int       `gorm:"default:0" json:"read_count"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// 关联
	Author  *Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Replies []*Comment `gorm:"-" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
