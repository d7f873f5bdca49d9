package repository

import (
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
)

type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// Create 事务内创建文章及其内容块、标签关联
func (r *StoryRepository) Create(story *model.Story) error {
	return r.db.Create(story).Error
}

func (r *StoryRepository) GetByID(id int64) (*model.Story, error) {
	var story model.Story
	err := r.db.Where("id = ?", id).First(&story).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// GetByUUID 按 UUID 获取文章详情（含作者、分类、标签、内容块）
func (r *StoryRepository) GetByUUID(uuid string) (*model.Story, error) {
	var story model.Story
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("SubCategory").
		Preload("Tags").
		Preload("Blocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("uuid = ?", uuid).
		First(&story).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *StoryRepository) Update(story *model.Story) error {
	return r.db.Save(story).Error
}

func (r *StoryRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Story{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceBlocks 整体替换文章的内容块
func (r *StoryRepository) ReplaceBlocks(storyID int64, blocks []*model.ContentBlock) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", storyID).Delete(&model.ContentBlock{}).Error; err != nil {
			return err
		}
		if len(blocks) == 0 {
			return nil
		}
		return tx.Create(blocks).Error
	})
}

// ReplaceTags 整体替换文章的标签关联
func (r *StoryRepository) ReplaceTags(story *model.Story, tags []*model.Tag) error {
	return r.db.Model(story).Association("Tags").Replace(tags)
}

// Delete 事务内删除文章及其内容块、评论、互动记录
func (r *StoryRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []int64
		if err := tx.Model(&model.Comment{}).Where("story_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", commentIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		for _, m := range []interface{}{&model.StoryLike{}, &model.Saved{}, &model.StoryView{}, &model.ContentBlock{}} {
			if err := tx.Where("story_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&model.Story{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Story{}, id).Error
	})
}

// List 获取文章分页列表（仅审核通过）
func (r *StoryRepository) List(page, pageSize int, categoryID int64, tag, search string, authorID int64) ([]*model.Story, int64, error) {
	var stories []*model.Story
	var total int64

	query := r.db.Model(&model.Story{}).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("approval_status = ?", model.StoryStatusApproved)

	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if authorID > 0 {
		query = query.Where("author_id = ?", authorID)
	}
	if tag != "" {
		query = query.Where("id IN (?)", r.db.Table("story_tags").
			Select("story_tags.story_id").
			Joins("JOIN tags ON tags.id = story_tags.tag_id").
			Where("tags.name = ?", tag))
	}
	if search != "" {
		query = query.Where("title LIKE ? OR subtitle LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&stories).Error
	if err != nil {
		return nil, 0, err
	}

	return stories, total, nil
}

// ListByAuthorID 获取作者的全部文章（含未过审，作者后台用）
func (r *StoryRepository) ListByAuthorID(authorID int64, page, pageSize int) ([]*model.Story, int64, error) {
	var stories []*model.Story
	var total int64

	query := r.db.Model(&model.Story{}).Preload("Author").Preload("Tags").
		Where("author_id = ?", authorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&stories).Error
	return stories, total, err
}

// ListByIDs 按 ID 集合获取文章，保持入参顺序
func (r *StoryRepository) ListByIDs(ids []int64) ([]*model.Story, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var stories []*model.Story
	err := r.db.Preload("Author").Preload("Tags").Where("id IN ?", ids).Find(&stories).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Story, len(stories))
	for _, s := range stories {
		byID[s.ID] = s
	}
	ordered := make([]*model.Story, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}

// ListPopular 按点赞数取热门文章
func (r *StoryRepository) ListPopular(limit int) ([]*model.Story, error) {
	var stories []*model.Story
	err := r.db.Preload("Author").Preload("Tags").
		Where("approval_status = ?", model.StoryStatusApproved).
		Order("like_count DESC, created_at DESC").
		Limit(limit).
		Find(&stories).Error
	return stories, err
}

// ListTrending 按浏览数取趋势文章
func (r *StoryRepository) ListTrending(limit int) ([]*model.Story, error) {
	var stories []*model.Story
	err := r.db.Preload("Author").Preload("Tags").
		Where("approval_status = ?", model.StoryStatusApproved).
		Order("view_count DESC, created_at DESC").
		Limit(limit).
		Find(&stories).Error
	return stories, err
}

// ListRelatedByTags 按共享标签取相关文章
func (r *StoryRepository) ListRelatedByTags(storyID int64, tagIDs []int64, limit int) ([]*model.Story, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	var stories []*model.Story
	err := r.db.Preload("Author").Preload("Tags").
		Where("approval_status = ? AND id <> ?", model.StoryStatusApproved, storyID).
		Where("id IN (?)", r.db.Table("story_tags").
			Select("DISTINCT story_tags.story_id").
			Where("story_tags.tag_id IN ?", tagIDs)).
		Order("created_at DESC").
		Limit(limit).
		Find(&stories).Error
	return stories, err
}

// ListMostLikedByAuthor 作者主页的高赞文章
func (r *StoryRepository) ListMostLikedByAuthor(authorID int64, limit int) ([]*model.Story, error) {
	var stories []*model.Story
	err := r.db.Preload("Author").Preload("Tags").
		Where("author_id = ? AND approval_status = ?", authorID, model.StoryStatusApproved).
		Order("like_count DESC, created_at DESC").
		Limit(limit).
		Find(&stories).Error
	return stories, err
}

// ListBanners 获取首页横幅文章
func (r *StoryRepository) ListBanners() ([]*model.Story, error) {
	var stories []*model.Story
	err := r.db.Preload("Author").
		Where("approval_status = ? AND is_banner = ?", model.StoryStatusApproved, true).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}

// ListByFolloweeIDs 获取关注作者的文章流
func (r *StoryRepository) ListByFolloweeIDs(authorIDs []int64, page, pageSize int) ([]*model.Story, int64, error) {
	if len(authorIDs) == 0 {
		return nil, 0, nil
	}
	var stories []*model.Story
	var total int64

	query := r.db.Model(&model.Story{}).Preload("Author").Preload("Tags").
		Where("approval_status = ? AND author_id IN ?", model.StoryStatusApproved, authorIDs)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&stories).Error
	return stories, total, err
}

// CountByAuthorID 统计作者已发布文章数
func (r *StoryRepository) CountByAuthorID(authorID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Story{}).
		Where("author_id = ? AND approval_status = ?", authorID, model.StoryStatusApproved).
		Count(&count).Error
	return count, err
}

// IncrementViewCount 增加浏览数
func (r *StoryRepository) IncrementViewCount(id int64) error {
	return r.db.Model(&model.Story{}).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// IncrementLikeCount 增加点赞数
func (r *StoryRepository) IncrementLikeCount(id int64, delta int) error {
	return r.db.Model(&model.Story{}).Where("id = ?", id).
		Update("like_count", gorm.Expr("like_count + ?", delta)).Error
}

// IncrementCommentCount 增加评论数
func (r *StoryRepository) IncrementCommentCount(id int64, delta int) error {
	return r.db.Model(&model.Story{}).Where("id = ?", id).
		Update("comment_count", gorm.Expr("comment_count + ?", delta)).Error
}
