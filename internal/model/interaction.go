package model

import (
	"time"
)

// CommentLike 评论点赞，(comment_id, user_id) 唯一约束是并发下的正确性保障
type CommentLike struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CommentID int64     `gorm:"not null;index;uniqueIndex:idx_comment_like_user" json:"comment_id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_comment_like_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// StoryLike 文章点赞，独立关联表
type StoryLike struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	StoryID   int64     `gorm:"not null;index;uniqueIndex:idx_story_like_user" json:"story_id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_story_like_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (StoryLike) TableName() string {
	return "story_likes"
}

// Saved 文章收藏
type Saved struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_saved_user_story" json:"user_id"`
	StoryID   int64     `gorm:"not null;index;uniqueIndex:idx_saved_user_story" json:"story_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Saved) TableName() string {
	return "saved_stories"
}

// Follow 作者关注关系
type Follow struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	FollowerID int64     `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeID int64     `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// StoryView 文章浏览记录，同一用户对同一文章只记一次
type StoryView struct {
	ID       int64     `gorm:"primaryKey" json:"id"`
	UserID   int64     `gorm:"not null;index;uniqueIndex:idx_view_user_story" json:"user_id"`
	StoryID  int64     `gorm:"not null;index;uniqueIndex:idx_view_user_story" json:"story_id"`
	ViewedAt time.Time `gorm:"autoCreateTime" json:"viewed_at"`
}

func (StoryView) TableName() string {
	return "story_views"
}
