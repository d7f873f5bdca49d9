package model

import (
	"time"
)

// 文章审核状态
const (
	StoryStatusPending  = "pending"
	StoryStatusApproved = "approved"
	StoryStatusRejected = "rejected"
)

type Story struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	UUID           string     `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	AuthorID       int64      `gorm:"not null;index" json:"author_id"`
	Title          string     `gorm:"size:200;not null" json:"title"`
	Subtitle       string     `gorm:"size:200" json:"subtitle"`
	CoverImageURL  string     `gorm:"size:500" json:"cover_image_url"`
	CategoryID     *int64     `gorm:"index" json:"category_id,omitempty"`
	SubCategoryID  *int64     `json:"sub_category_id,omitempty"`
	ApprovalStatus string     `gorm:"size:10;default:pending;index" json:"approval_status"`
	IsBanner       bool       `gorm:"default:false;index" json:"is_banner"`
	BannerImageURL string     `gorm:"size:500" json:"banner_image_url,omitempty"`
	LikeCount      int        `gorm:"default:0" json:"like_count"`
	CommentCount   int        `gorm:"default:0" json:"comment_count"`
	ViewCount      int        `gorm:"default:0" json:"view_count"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// 关联
	Author      *Author         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategory *SubCategory    `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	Tags        []*Tag          `gorm:"many2many:story_tags" json:"tags,omitempty"`
	Blocks      []*ContentBlock `gorm:"foreignKey:StoryID" json:"blocks,omitempty"`
}

func (Story) TableName() string {
	return "stories"
}
