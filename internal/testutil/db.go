package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/linuxbro/blog_go_server/internal/model"
)

// SetupTestDB 创建测试数据库（SQLite 内存模式）
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect test database: %v", err)
	}

	// 自动迁移所有模型
	err = db.AutoMigrate(
		&model.Author{},
		&model.Category{},
		&model.SubCategory{},
		&model.Tag{},
		&model.Story{},
		&model.ContentBlock{},
		&model.Comment{},
		&model.CommentLike{},
		&model.StoryLike{},
		&model.Saved{},
		&model.Follow{},
		&model.StoryView{},
		&model.SiteContent{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB 清理测试数据库
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close test database: %v", err)
	}
}

// TruncateTables 清空所有表数据
func TruncateTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	tables := []string{
		"comment_likes",
		"story_likes",
		"saved_stories",
		"follows",
		"story_views",
		"site_contents",
		"comments",
		"content_blocks",
		"story_tags",
		"stories",
		"tags",
		"sub_categories",
		"categories",
		"authors",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("Warning: Failed to truncate table %s: %v", table, err)
		}
	}
}
