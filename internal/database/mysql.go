package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/model"
)

// NewMySQL 建立 MySQL 连接并配置连接池
func NewMySQL(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate 执行全部表结构迁移
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}
