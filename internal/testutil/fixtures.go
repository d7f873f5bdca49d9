package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestAuthor 创建测试作者
func TestAuthor(t *testing.T, db *gorm.DB, opts ...func(*model.Author)) *model.Author {
	t.Helper()

	seq := nextSeq()
	email := fmt.Sprintf("test_%d@example.com", seq)
	passwordHash := "$2a$10$abcdefghijklmnopqrstuvwxyz123456" // bcrypt hash placeholder
	author := &model.Author{
		UUID:         uuid.NewString(),
		Username:     fmt.Sprintf("testuser_%d", seq),
		Email:        &email,
		PasswordHash: &passwordHash,
	}

	for _, opt := range opts {
		opt(author)
	}

	if err := db.Create(author).Error; err != nil {
		t.Fatalf("Failed to create test author: %v", err)
	}

	return author
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.Author) {
	return func(a *model.Author) {
		a.Username = username
	}
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.Author) {
	return func(a *model.Author) {
		a.Email = &email
	}
}

// TestStory 创建测试文章（默认已过审）
func TestStory(t *testing.T, db *gorm.DB, authorID int64, opts ...func(*model.Story)) *model.Story {
	t.Helper()

	story := &model.Story{
		UUID:           uuid.NewString(),
		AuthorID:       authorID,
		Title:          fmt.Sprintf("Test Story %d", nextSeq()),
		ApprovalStatus: model.StoryStatusApproved,
	}

	for _, opt := range opts {
		opt(story)
	}

	if err := db.Create(story).Error; err != nil {
		t.Fatalf("Failed to create test story: %v", err)
	}

	return story
}

// WithTitle 设置文章标题
func WithTitle(title string) func(*model.Story) {
	return func(s *model.Story) {
		s.Title = title
	}
}

// WithApprovalStatus 设置审核状态
func WithApprovalStatus(status string) func(*model.Story) {
	return func(s *model.Story) {
		s.ApprovalStatus = status
	}
}

// WithBanner 设置为横幅文章
func WithBanner() func(*model.Story) {
	return func(s *model.Story) {
		s.IsBanner = true
	}
}

// WithBlocks 设置内容块
func WithBlocks(blocks ...*model.ContentBlock) func(*model.Story) {
	return func(s *model.Story) {
		s.Blocks = blocks
	}
}

// WithTags 设置标签
func WithTags(tags ...*model.Tag) func(*model.Story) {
	return func(s *model.Story) {
		s.Tags = tags
	}
}

// TestComment 创建测试评论
func TestComment(t *testing.T, db *gorm.DB, authorID, storyID int64, body string) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		StoryID:  storyID,
		AuthorID: authorID,
		Body:     body,
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// TestReply 创建测试回复
func TestReply(t *testing.T, db *gorm.DB, authorID, storyID, parentID int64, body string) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		StoryID:  storyID,
		AuthorID: authorID,
		ParentID: &parentID,
		Body:     body,
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test reply: %v", err)
	}

	return comment
}

// TestTag 创建测试标签
func TestTag(t *testing.T, db *gorm.DB, name string) *model.Tag {
	t.Helper()

	tag := &model.Tag{Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("Failed to create test tag: %v", err)
	}

	return tag
}

// TestCategory 创建测试分类
func TestCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()

	category := &model.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return category
}

// TestCommentLike 创建评论点赞
func TestCommentLike(t *testing.T, db *gorm.DB, userID, commentID int64) *model.CommentLike {
	t.Helper()

	like := &model.CommentLike{CommentID: commentID, UserID: userID}
	if err := db.Create(like).Error; err != nil {
		t.Fatalf("Failed to create test comment like: %v", err)
	}

	return like
}

// TestStoryLike 创建文章点赞
func TestStoryLike(t *testing.T, db *gorm.DB, userID, storyID int64) *model.StoryLike {
	t.Helper()

	like := &model.StoryLike{StoryID: storyID, UserID: userID}
	if err := db.Create(like).Error; err != nil {
		t.Fatalf("Failed to create test story like: %v", err)
	}

	return like
}

// TestFollow 创建关注关系
func TestFollow(t *testing.T, db *gorm.DB, followerID, followeeID int64) *model.Follow {
	t.Helper()

	follow := &model.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := db.Create(follow).Error; err != nil {
		t.Fatalf("Failed to create test follow: %v", err)
	}

	return follow
}
