package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/model"
	"github.com/linuxbro/blog_go_server/internal/model/dto"
	"github.com/linuxbro/blog_go_server/internal/pkg/logger"
	"github.com/linuxbro/blog_go_server/internal/repository"
)

var (
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrCommentPermission = errors.New("无权操作此评论")
	ErrEmptyComment      = errors.New("评论内容不能为空")
	ErrParentNotFound    = errors.New("父评论不存在")
	ErrParentNotInStory  = errors.New("父评论不属于该文章")
)

type CommentService struct {
	commentRepo     *repository.CommentRepository
	storyRepo       *repository.StoryRepository
	authorRepo      *repository.AuthorRepository
	interactionRepo *repository.InteractionRepository
	cfg             *config.Config
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	storyRepo *repository.StoryRepository,
	authorRepo *repository.AuthorRepository,
	interactionRepo *repository.InteractionRepository,
	cfg *config.Config,
) *CommentService {
	return &CommentService{
		commentRepo:     commentRepo,
		storyRepo:       storyRepo,
		authorRepo:      authorRepo,
		interactionRepo: interactionRepo,
		cfg:             cfg,
	}
}

// Create 创建评论或回复
func (s *CommentService) Create(userID int64, storyUUID string, req *dto.CreateCommentRequest) (*dto.CommentItem, error) {
	// binding 的 min=1 拦不住纯空白内容
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrEmptyComment
	}

	story, err := s.lookupStory(storyUUID)
	if err != nil {
		return nil, err
	}
	storyID := story.ID

	// 回复必须挂在同一篇文章的评论下，层级不限
	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.StoryID != storyID {
			return nil, ErrParentNotInStory
		}
	}

	author, err := s.authorRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		StoryID:  storyID,
		AuthorID: userID,
		ParentID: req.ParentID,
		Body:     body,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// 计数失败不影响评论本身，只记日志
	if err := s.storyRepo.IncrementCommentCount(storyID, 1); err != nil {
		logger.Log.Warnf("Failed to increment comment count for story %d: %v", storyID, err)
	}

	return &dto.CommentItem{
		ID:       comment.ID,
		ParentID: comment.ParentID,
		Body:     comment.Body,
		Replies:  []*dto.CommentItem{},
		User: &dto.CommentUser{
			ID:        author.ID,
			Username:  author.Username,
			AvatarURL: author.AvatarURL,
		},
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Delete 删除评论及其整棵回复子树
func (s *CommentService) Delete(userID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.AuthorID != userID {
		return ErrCommentPermission
	}

	deleted, err := s.commentRepo.DeleteSubtree(commentID)
	if err != nil {
		return err
	}

	if err := s.storyRepo.IncrementCommentCount(comment.StoryID, -int(deleted)); err != nil {
		logger.Log.Warnf("Failed to decrement comment count for story %d: %v", comment.StoryID, err)
	}

	return nil
}

// ToggleLike 评论点赞开关，返回操作后的状态与点赞数
func (s *CommentService) ToggleLike(userID, commentID int64) (*dto.ToggleResponse, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	liked, err := s.interactionRepo.CommentLikeExists(commentID, userID)
	if err != nil {
		return nil, err
	}

	active := false
	if liked {
		if _, err := s.interactionRepo.DeleteCommentLike(commentID, userID); err != nil {
			return nil, err
		}
	} else {
		like := &model.CommentLike{CommentID: commentID, UserID: userID}
		if err := s.interactionRepo.CreateCommentLike(like); err != nil {
			// 并发下唯一索引冲突说明已点赞，按当前状态返回
			exists, existsErr := s.interactionRepo.CommentLikeExists(commentID, userID)
			if existsErr != nil || !exists {
				return nil, err
			}
		}
		active = true
	}

	counts, err := s.interactionRepo.CountCommentLikes([]int64{comment.ID})
	if err != nil {
		return nil, err
	}

	return &dto.ToggleResponse{
		Active: active,
		Count:  counts[comment.ID],
	}, nil
}

// ListByStory 获取文章的完整评论树，带点赞数与当前用户点赞状态。
// 全部数据只用三条查询取回：评论、点赞数、当前用户点赞集合。
func (s *CommentService) ListByStory(storyUUID string, viewerID int64) ([]*dto.CommentItem, int64, error) {
	story, err := s.lookupStory(storyUUID)
	if err != nil {
		return nil, 0, err
	}

	comments, err := s.commentRepo.ListByStoryID(story.ID)
	if err != nil {
		return nil, 0, err
	}

	if len(comments) == 0 {
		return []*dto.CommentItem{}, 0, nil
	}

	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	likeCounts, err := s.interactionRepo.CountCommentLikes(ids)
	if err != nil {
		return nil, 0, err
	}

	likedSet := map[int64]bool{}
	if viewerID != 0 {
		likedSet, err = s.interactionRepo.GetLikedCommentIDs(viewerID, ids)
		if err != nil {
			return nil, 0, err
		}
	}

	// 评论已按创建时间倒序返回，按该顺序组树即可保证每层都是最新在前
	items := make(map[int64]*dto.CommentItem, len(comments))
	for _, c := range comments {
		items[c.ID] = s.buildCommentItem(c, likeCounts[c.ID], likedSet[c.ID])
	}

	roots := make([]*dto.CommentItem, 0)
	for _, c := range comments {
		item := items[c.ID]
		if c.ParentID == nil {
			roots = append(roots, item)
			continue
		}
		if parent, ok := items[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, item)
		} else {
			// 父评论已被删除的孤儿回复提升为根
			roots = append(roots, item)
		}
	}

	return roots, int64(len(comments)), nil
}

// lookupStory 评论读写都只针对已过审文章
func (s *CommentService) lookupStory(storyUUID string) (*model.Story, error) {
	story, err := s.storyRepo.GetByUUID(storyUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}
	if story.ApprovalStatus != model.StoryStatusApproved {
		return nil, ErrStoryNotApproved
	}
	return story, nil
}

func (s *CommentService) buildCommentItem(c *model.Comment, likeCount int, isLiked bool) *dto.CommentItem {
	item := &dto.CommentItem{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Body:      c.Body,
		LikeCount: likeCount,
		IsLiked:   isLiked,
		Replies:   []*dto.CommentItem{},
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}

	if c.Author != nil {
		item.User = &dto.CommentUser{
			ID:        c.Author.ID,
			Username:  c.Author.Username,
			AvatarURL: c.Author.AvatarURL,
		}
	}

	return item
}
