package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/model"
	"github.com/linuxbro/blog_go_server/internal/model/dto"
	"github.com/linuxbro/blog_go_server/internal/repository"
)

type InteractionService struct {
	interactionRepo *repository.InteractionRepository
	storyRepo       *repository.StoryRepository
	cfg             *config.Config
}

func NewInteractionService(
	interactionRepo *repository.InteractionRepository,
	storyRepo *repository.StoryRepository,
	cfg *config.Config,
) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		storyRepo:       storyRepo,
		cfg:             cfg,
	}
}

// ToggleStoryLike 文章点赞开关
func (s *InteractionService) ToggleStoryLike(userID int64, storyUUID string) (*dto.ToggleResponse, error) {
	story, err := s.lookupStory(storyUUID)
	if err != nil {
		return nil, err
	}

	liked, err := s.interactionRepo.StoryLikeExists(story.ID, userID)
	if err != nil {
		return nil, err
	}

	active := false
	if liked {
		affected, err := s.interactionRepo.DeleteStoryLike(story.ID, userID)
		if err != nil {
			return nil, err
		}
		if affected > 0 {
			s.storyRepo.IncrementLikeCount(story.ID, -1)
		}
	} else {
		like := &model.StoryLike{StoryID: story.ID, UserID: userID}
		if err := s.interactionRepo.CreateStoryLike(like); err != nil {
			// 并发下唯一索引冲突说明已点赞，按当前状态返回
			exists, existsErr := s.interactionRepo.StoryLikeExists(story.ID, userID)
			if existsErr != nil || !exists {
				return nil, err
			}
		} else {
			s.storyRepo.IncrementLikeCount(story.ID, 1)
		}
		active = true
	}

	fresh, err := s.storyRepo.GetByID(story.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleResponse{
		Active: active,
		Count:  fresh.LikeCount,
	}, nil
}

// ToggleSave 文章收藏开关
func (s *InteractionService) ToggleSave(userID int64, storyUUID string) (*dto.ToggleResponse, error) {
	story, err := s.lookupStory(storyUUID)
	if err != nil {
		return nil, err
	}

	saved, err := s.interactionRepo.SavedExists(userID, story.ID)
	if err != nil {
		return nil, err
	}

	active := false
	if saved {
		if _, err := s.interactionRepo.DeleteSaved(userID, story.ID); err != nil {
			return nil, err
		}
	} else {
		record := &model.Saved{UserID: userID, StoryID: story.ID}
		if err := s.interactionRepo.CreateSaved(record); err != nil {
			exists, existsErr := s.interactionRepo.SavedExists(userID, story.ID)
			if existsErr != nil || !exists {
				return nil, err
			}
		}
		active = true
	}

	return &dto.ToggleResponse{Active: active}, nil
}

// RecordView 记录浏览，同一用户只计一次
func (s *InteractionService) RecordView(userID int64, storyUUID string) error {
	story, err := s.lookupStory(storyUUID)
	if err != nil {
		return err
	}

	created, err := s.interactionRepo.CreateStoryView(&model.StoryView{
		UserID:  userID,
		StoryID: story.ID,
	})
	if err != nil {
		return err
	}

	if created {
		s.storyRepo.IncrementViewCount(story.ID)
	}
	return nil
}

// ListSaved 用户收藏的文章，按收藏时间倒序
func (s *InteractionService) ListSaved(userID int64, page, pageSize int) (*dto.StoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.cfg.Content.PageSize
	}

	ids, total, err := s.interactionRepo.GetSavedStoryIDs(userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	stories, err := s.storyRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}

	return &dto.StoryListResponse{
		Stories:  storyListItems(stories),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListFeed 关注作者的文章流
func (s *InteractionService) ListFeed(userID int64, page, pageSize int) (*dto.StoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.cfg.Content.PageSize
	}

	followeeIDs, err := s.interactionRepo.GetFolloweeIDs(userID)
	if err != nil {
		return nil, err
	}

	stories, total, err := s.storyRepo.ListByFolloweeIDs(followeeIDs, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.StoryListResponse{
		Stories:  storyListItems(stories),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *InteractionService) lookupStory(storyUUID string) (*model.Story, error) {
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

func storyListItems(stories []*model.Story) []*dto.StoryListItem {
	items := make([]*dto.StoryListItem, len(stories))
	for i, story := range stories {
		item := &dto.StoryListItem{
			ID:            story.ID,
			UUID:          story.UUID,
			Title:         story.Title,
			Subtitle:      story.Subtitle,
			CoverImageURL: story.CoverImageURL,
			Tags:          tagNames(story.Tags),
			LikeCount:     story.LikeCount,
			CommentCount:  story.CommentCount,
			ViewCount:     story.ViewCount,
			CreatedAt:     story.CreatedAt.Format(time.RFC3339),
		}
		if story.Author != nil {
			item.Author = buildAuthorInfo(story.Author)
		}
		items[i] = item
	}
	return items
}
