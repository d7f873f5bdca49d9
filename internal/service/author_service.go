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

var (
	ErrAuthorNotFound = errors.New("作者不存在")
	ErrSelfFollow     = errors.New("不能关注自己")
)

type AuthorService struct {
	authorRepo      *repository.AuthorRepository
	storyRepo       *repository.StoryRepository
	interactionRepo *repository.InteractionRepository
	cfg             *config.Config
}

func NewAuthorService(
	authorRepo *repository.AuthorRepository,
	storyRepo *repository.StoryRepository,
	interactionRepo *repository.InteractionRepository,
	cfg *config.Config,
) *AuthorService {
	return &AuthorService{
		authorRepo:      authorRepo,
		storyRepo:       storyRepo,
		interactionRepo: interactionRepo,
		cfg:             cfg,
	}
}

// GetProfile 作者主页信息，带文章数、粉丝数和当前用户的关注状态
func (s *AuthorService) GetProfile(username string, viewerID int64) (*dto.AuthorProfile, error) {
	author, err := s.authorRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	storyCount, err := s.storyRepo.CountByAuthorID(author.ID)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.interactionRepo.CountFollowers(author.ID)
	if err != nil {
		return nil, err
	}

	topLimit := s.cfg.Content.PopularLimit
	if topLimit < 1 {
		topLimit = 5
	}
	topStories, err := s.storyRepo.ListMostLikedByAuthor(author.ID, topLimit)
	if err != nil {
		return nil, err
	}

	profile := &dto.AuthorProfile{
		ID:            author.ID,
		UUID:          author.UUID,
		Username:      author.Username,
		FullName:      author.FullName,
		Bio:           author.Bio,
		AvatarURL:     author.AvatarURL,
		Website:       author.Website,
		TwitterHandle: author.TwitterHandle,
		StoryCount:    storyCount,
		FollowerCount: followerCount,
		TopStories:    storyListItems(topStories),
		CreatedAt:     author.CreatedAt.Format(time.RFC3339),
	}

	if viewerID != 0 && viewerID != author.ID {
		following, err := s.interactionRepo.FollowExists(viewerID, author.ID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = following
	}

	return profile, nil
}

// ToggleFollow 关注开关，不允许关注自己
func (s *AuthorService) ToggleFollow(followerID int64, followeeUsername string) (*dto.ToggleResponse, error) {
	followee, err := s.authorRepo.GetByUsername(followeeUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	followeeID := followee.ID

	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	following, err := s.interactionRepo.FollowExists(followerID, followeeID)
	if err != nil {
		return nil, err
	}

	active := false
	if following {
		if _, err := s.interactionRepo.DeleteFollow(followerID, followeeID); err != nil {
			return nil, err
		}
	} else {
		follow := &model.Follow{FollowerID: followerID, FolloweeID: followeeID}
		if err := s.interactionRepo.CreateFollow(follow); err != nil {
			// 并发下唯一索引冲突说明已关注，按当前状态返回
			exists, existsErr := s.interactionRepo.FollowExists(followerID, followeeID)
			if existsErr != nil || !exists {
				return nil, err
			}
		}
		active = true
	}

	count, err := s.interactionRepo.CountFollowers(followeeID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleResponse{
		Active: active,
		Count:  int(count),
	}, nil
}
