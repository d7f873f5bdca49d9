package repository

import (
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据 ID 获取评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDWithAuthor 获取评论及作者信息
func (r *CommentRepository) GetByIDWithAuthor(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("Author").Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByStoryID 一次性取出文章的全部评论（构树在 service 层完成）
func (r *CommentRepository) ListByStoryID(storyID int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Preload("Author").
		Where("story_id = ?", storyID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// CountByStoryID 获取文章的评论数
func (r *CommentRepository) CountByStoryID(storyID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("story_id = ?", storyID).Count(&count).Error
	return count, err
}

// ListChildIDs 获取直接子评论 ID
func (r *CommentRepository) ListChildIDs(tx *gorm.DB, parentIDs []int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var ids []int64
	err := tx.Model(&model.Comment{}).Where("parent_id IN ?", parentIDs).Pluck("id", &ids).Error
	return ids, err
}

// DeleteSubtree 事务内删除整棵评论子树及其点赞记录，返回删除的评论数
func (r *CommentRepository) DeleteSubtree(rootID int64) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		all := []int64{rootID}
		frontier := []int64{rootID}
		for len(frontier) > 0 {
			children, err := r.ListChildIDs(tx, frontier)
			if err != nil {
				return err
			}
			all = append(all, children...)
			frontier = children
		}

		if err := tx.Where("comment_id IN ?", all).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}

		result := tx.Where("id IN ?", all).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// IncrementReadCount 增加评论阅读数
func (r *CommentRepository) IncrementReadCount(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&model.Comment{}).Where("id IN ?", ids).
		Update("read_count", gorm.Expr("read_count + 1")).Error
}
