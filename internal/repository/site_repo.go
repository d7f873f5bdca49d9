package repository

import (
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// ListBySection 获取指定栏目的内容条目
func (r *SiteRepository) ListBySection(section string) ([]*model.SiteContent, error) {
	var items []*model.SiteContent
	err := r.db.Where("section = ?", section).
		Order("position ASC, id ASC").
		Find(&items).Error
	return items, err
}
