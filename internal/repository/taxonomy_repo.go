package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
)

type TaxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// ListCategories 获取全部分类
func (r *TaxonomyRepository) ListCategories() ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// GetCategoryByID 根据 ID 获取分类
func (r *TaxonomyRepository) GetCategoryByID(id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListSubCategories 获取分类下的子分类
func (r *TaxonomyRepository) ListSubCategories(categoryID int64) ([]*model.SubCategory, error) {
	var subs []*model.SubCategory
	err := r.db.Where("category_id = ?", categoryID).Order("name ASC").Find(&subs).Error
	return subs, err
}

// GetSubCategoryByID 根据 ID 获取子分类
func (r *TaxonomyRepository) GetSubCategoryByID(id int64) (*model.SubCategory, error) {
	var sub model.SubCategory
	err := r.db.Where("id = ?", id).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetOrCreateTags 按名称获取或创建标签，名称统一转小写去空白
func (r *TaxonomyRepository) GetOrCreateTags(names []string) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		var tag model.Tag
		err := r.db.Where("name = ?", normalized).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = model.Tag{Name: normalized}
			if err := r.db.Create(&tag).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	return tags, nil
}

// ListTags 获取全部标签
func (r *TaxonomyRepository) ListTags() ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
