package repository

import (
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
)

type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// CreateCommentLike 创建评论点赞
func (r *InteractionRepository) CreateCommentLike(like *model.CommentLike) error {
	return r.db.Create(like).Error
}

// DeleteCommentLike 删除评论点赞，返回受影响行数
func (r *InteractionRepository) DeleteCommentLike(commentID, userID int64) (int64, error) {
	result := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{})
	return result.RowsAffected, result.Error
}

// CommentLikeExists 检查用户是否点赞过评论
func (r *InteractionRepository) CommentLikeExists(commentID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetLikedCommentIDs 批量获取用户点赞过的评论 ID 集合
func (r *InteractionRepository) GetLikedCommentIDs(userID int64, commentIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool)
	if userID == 0 || len(commentIDs) == 0 {
		return liked, nil
	}
	var ids []int64
	err := r.db.Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// CountCommentLikes 批量统计评论点赞数
func (r *InteractionRepository) CountCommentLikes(commentIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int)
	if len(commentIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		CommentID int64
		Count     int
	}
	err := r.db.Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.CommentID] = row.Count
	}
	return counts, nil
}

// CreateStoryLike 创建文章点赞
func (r *InteractionRepository) CreateStoryLike(like *model.StoryLike) error {
	return r.db.Create(like).Error
}

// DeleteStoryLike 删除文章点赞，返回受影响行数
func (r *InteractionRepository) DeleteStoryLike(storyID, userID int64) (int64, error) {
	result := r.db.Where("story_id = ? AND user_id = ?", storyID, userID).
		Delete(&model.StoryLike{})
	return result.RowsAffected, result.Error
}

// StoryLikeExists 检查用户是否点赞过文章
func (r *InteractionRepository) StoryLikeExists(storyID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.StoryLike{}).
		Where("story_id = ? AND user_id = ?", storyID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateSaved 创建收藏
func (r *InteractionRepository) CreateSaved(saved *model.Saved) error {
	return r.db.Create(saved).Error
}

// DeleteSaved 删除收藏，返回受影响行数
func (r *InteractionRepository) DeleteSaved(userID, storyID int64) (int64, error) {
	result := r.db.Where("user_id = ? AND story_id = ?", userID, storyID).
		Delete(&model.Saved{})
	return result.RowsAffected, result.Error
}

// SavedExists 检查用户是否收藏过文章
func (r *InteractionRepository) SavedExists(userID, storyID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Saved{}).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Count(&count).Error
	return count > 0, err
}

// GetSavedStoryIDs 获取用户收藏的文章 ID（按收藏时间倒序）
func (r *InteractionRepository) GetSavedStoryIDs(userID int64, page, pageSize int) ([]int64, int64, error) {
	var total int64
	var ids []int64

	query := r.db.Model(&model.Saved{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Pluck("story_id", &ids).Error
	return ids, total, err
}

// CreateFollow 创建关注
func (r *InteractionRepository) CreateFollow(follow *model.Follow) error {
	return r.db.Create(follow).Error
}

// DeleteFollow 删除关注，返回受影响行数
func (r *InteractionRepository) DeleteFollow(followerID, followeeID int64) (int64, error) {
	result := r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	return result.RowsAffected, result.Error
}

// FollowExists 检查关注关系是否存在
func (r *InteractionRepository) FollowExists(followerID, followeeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// CountFollowers 统计作者的粉丝数
func (r *InteractionRepository) CountFollowers(followeeID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("followee_id = ?", followeeID).Count(&count).Error
	return count, err
}

// GetFolloweeIDs 获取用户关注的作者 ID 列表
func (r *InteractionRepository) GetFolloweeIDs(followerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Pluck("followee_id", &ids).Error
	return ids, err
}

// CreateStoryView 记录浏览，已存在则忽略
func (r *InteractionRepository) CreateStoryView(view *model.StoryView) (bool, error) {
	var count int64
	err := r.db.Model(&model.StoryView{}).
		Where("user_id = ? AND story_id = ?", view.UserID, view.StoryID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := r.db.Create(view).Error; err != nil {
		return false, err
	}
	return true, nil
}
