package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/model"
	"github.com/linuxbro/blog_go_server/internal/model/dto"
	"github.com/linuxbro/blog_go_server/internal/pkg/logger"
	"github.com/linuxbro/blog_go_server/internal/pkg/render"
	"github.com/linuxbro/blog_go_server/internal/repository"
)

var (
	ErrStoryNotFound    = errors.New("文章不存在")
	ErrStoryNotApproved = errors.New("文章未通过审核")
	ErrStoryPermission  = errors.New("无权操作此文章")
	ErrInvalidBlockType = errors.New("不支持的内容块类型")
	ErrInvalidCodeLang  = errors.New("不支持的代码语言")
	ErrInvalidVideoURL  = errors.New("无法识别的视频链接")
	ErrCategoryNotFound = errors.New("分类不存在")
)

type StoryService struct {
	storyRepo       *repository.StoryRepository
	taxonomyRepo    *repository.TaxonomyRepository
	interactionRepo *repository.InteractionRepository
	cfg             *config.Config
}

func NewStoryService(
	storyRepo *repository.StoryRepository,
	taxonomyRepo *repository.TaxonomyRepository,
	interactionRepo *repository.InteractionRepository,
	cfg *config.Config,
) *StoryService {
	return &StoryService{
		storyRepo:       storyRepo,
		taxonomyRepo:    taxonomyRepo,
		interactionRepo: interactionRepo,
		cfg:             cfg,
	}
}

// Create 创建文章，新文章进入待审核状态
func (s *StoryService) Create(userID int64, req *dto.CreateStoryRequest) (*dto.StoryDetail, error) {
	blocks, err := s.buildBlocks(req.Blocks)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.taxonomyRepo.GetCategoryByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	tags, err := s.taxonomyRepo.GetOrCreateTags(req.Tags)
	if err != nil {
		return nil, err
	}

	story := &model.Story{
		UUID:           uuid.NewString(),
		AuthorID:       userID,
		Title:          strings.TrimSpace(req.Title),
		Subtitle:       strings.TrimSpace(req.Subtitle),
		CoverImageURL:  req.CoverImageURL,
		CategoryID:     req.CategoryID,
		SubCategoryID:  req.SubCategoryID,
		ApprovalStatus: model.StoryStatusPending,
		Tags:           tags,
		Blocks:         blocks,
	}

	if err := s.storyRepo.Create(story); err != nil {
		return nil, err
	}

	created, err := s.storyRepo.GetByUUID(story.UUID)
	if err != nil {
		return nil, err
	}
	return s.buildStoryDetail(created, 0), nil
}

// Update 更新文章，内容块整体替换，修改后重新进入待审核状态
func (s *StoryService) Update(userID int64, storyUUID string, req *dto.UpdateStoryRequest) (*dto.StoryDetail, error) {
	story, err := s.storyRepo.GetByUUID(storyUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}

	if story.AuthorID != userID {
		return nil, ErrStoryPermission
	}

	if req.Title != nil {
		story.Title = strings.TrimSpace(*req.Title)
	}
	if req.Subtitle != nil {
		story.Subtitle = strings.TrimSpace(*req.Subtitle)
	}
	if req.CoverImageURL != nil {
		story.CoverImageURL = *req.CoverImageURL
	}
	if req.CategoryID != nil {
		if _, err := s.taxonomyRepo.GetCategoryByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		story.CategoryID = req.CategoryID
	}
	if req.SubCategoryID != nil {
		story.SubCategoryID = req.SubCategoryID
	}
	story.ApprovalStatus = model.StoryStatusPending

	if err := s.storyRepo.UpdateFields(story.ID, map[string]interface{}{
		"title":           story.Title,
		"subtitle":        story.Subtitle,
		"cover_image_url": story.CoverImageURL,
		"category_id":     story.CategoryID,
		"sub_category_id": story.SubCategoryID,
		"approval_status": story.ApprovalStatus,
	}); err != nil {
		return nil, err
	}

	if req.Tags != nil {
		tags, err := s.taxonomyRepo.GetOrCreateTags(req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.storyRepo.ReplaceTags(story, tags); err != nil {
			return nil, err
		}
	}

	if req.Blocks != nil {
		blocks, err := s.buildBlocks(req.Blocks)
		if err != nil {
			return nil, err
		}
		for _, b := range blocks {
			b.StoryID = story.ID
		}
		if err := s.storyRepo.ReplaceBlocks(story.ID, blocks); err != nil {
			return nil, err
		}
	}

	updated, err := s.storyRepo.GetByUUID(storyUUID)
	if err != nil {
		return nil, err
	}
	return s.buildStoryDetail(updated, userID), nil
}

// Delete 删除文章及其全部关联数据
func (s *StoryService) Delete(userID int64, storyUUID string) error {
	story, err := s.storyRepo.GetByUUID(storyUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoryNotFound
		}
		return err
	}

	if story.AuthorID != userID {
		return ErrStoryPermission
	}

	return s.storyRepo.Delete(story.ID)
}

// GetByUUID 获取文章详情。未过审文章只有作者本人可见。
func (s *StoryService) GetByUUID(storyUUID string, viewerID int64) (*dto.StoryDetail, error) {
	story, err := s.storyRepo.GetByUUID(storyUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}

	if story.ApprovalStatus != model.StoryStatusApproved && story.AuthorID != viewerID {
		return nil, ErrStoryNotApproved
	}

	return s.buildStoryDetail(story, viewerID), nil
}

// List 文章分页列表
func (s *StoryService) List(query *dto.StoryQuery) (*dto.StoryListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = s.cfg.Content.PageSize
	}

	tag := strings.ToLower(strings.TrimSpace(query.Tag))

	stories, total, err := s.storyRepo.List(page, pageSize, query.CategoryID, tag, query.Search, query.AuthorID)
	if err != nil {
		return nil, err
	}

	return &dto.StoryListResponse{
		Stories:  s.buildStoryList(stories),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListMine 作者后台的文章列表（含待审核与被拒的）
func (s *StoryService) ListMine(userID int64, page, pageSize int) (*dto.StoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.cfg.Content.PageSize
	}

	stories, total, err := s.storyRepo.ListByAuthorID(userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.StoryListResponse{
		Stories:  s.buildStoryList(stories),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListPopular 热门文章
func (s *StoryService) ListPopular() ([]*dto.StoryListItem, error) {
	stories, err := s.storyRepo.ListPopular(s.cfg.Content.PopularLimit)
	if err != nil {
		return nil, err
	}
	return s.buildStoryList(stories), nil
}

// ListTrending 趋势文章
func (s *StoryService) ListTrending() ([]*dto.StoryListItem, error) {
	stories, err := s.storyRepo.ListTrending(s.cfg.Content.TrendingLimit)
	if err != nil {
		return nil, err
	}
	return s.buildStoryList(stories), nil
}

// ListRelated 按共享标签获取相关文章
func (s *StoryService) ListRelated(storyUUID string) ([]*dto.StoryListItem, error) {
	story, err := s.storyRepo.GetByUUID(storyUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}

	tagIDs := make([]int64, 0, len(story.Tags))
	for _, t := range story.Tags {
		tagIDs = append(tagIDs, t.ID)
	}

	stories, err := s.storyRepo.ListRelatedByTags(story.ID, tagIDs, s.cfg.Content.RelatedLimit)
	if err != nil {
		return nil, err
	}
	return s.buildStoryList(stories), nil
}

// ListBanners 首页横幅文章
func (s *StoryService) ListBanners() ([]*dto.StoryListItem, error) {
	stories, err := s.storyRepo.ListBanners()
	if err != nil {
		return nil, err
	}
	return s.buildStoryList(stories), nil
}

// ListCategories 获取全部分类
func (s *StoryService) ListCategories() ([]*model.Category, error) {
	return s.taxonomyRepo.ListCategories()
}

// ListSubCategories 获取分类下的子分类
func (s *StoryService) ListSubCategories(categoryID int64) ([]*model.SubCategory, error) {
	if _, err := s.taxonomyRepo.GetCategoryByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.taxonomyRepo.ListSubCategories(categoryID)
}

// ListTags 获取全部标签
func (s *StoryService) ListTags() ([]*model.Tag, error) {
	return s.taxonomyRepo.ListTags()
}

// buildBlocks 校验并按入参顺序编号内容块
func (s *StoryService) buildBlocks(inputs []*dto.ContentBlockInput) ([]*model.ContentBlock, error) {
	blocks := make([]*model.ContentBlock, 0, len(inputs))
	for i, in := range inputs {
		if !model.ValidBlockType(in.BlockType) {
			return nil, ErrInvalidBlockType
		}

		block := &model.ContentBlock{
			BlockType: in.BlockType,
			Position:  i,
			Text:      in.Text,
			ImageURL:  in.ImageURL,
		}

		switch in.BlockType {
		case model.BlockTypeCode:
			if !model.ValidCodeLanguage(in.CodeLanguage) {
				return nil, ErrInvalidCodeLang
			}
			block.CodeLanguage = in.CodeLanguage
		case model.BlockTypeYoutube:
			videoID := render.YoutubeID(in.VideoURL)
			if videoID == "" {
				return nil, ErrInvalidVideoURL
			}
			block.VideoURL = render.YoutubeEmbedURL(videoID)
		}

		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (s *StoryService) buildStoryList(stories []*model.Story) []*dto.StoryListItem {
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
		if story.Category != nil {
			item.Category = story.Category.Name
		}
		items[i] = item
	}
	return items
}

func (s *StoryService) buildStoryDetail(story *model.Story, viewerID int64) *dto.StoryDetail {
	detail := &dto.StoryDetail{
		ID:             story.ID,
		UUID:           story.UUID,
		Title:          story.Title,
		Subtitle:       story.Subtitle,
		CoverImageURL:  story.CoverImageURL,
		ApprovalStatus: story.ApprovalStatus,
		Tags:           tagNames(story.Tags),
		Blocks:         s.buildBlockItems(story.Blocks),
		LikeCount:      story.LikeCount,
		CommentCount:   story.CommentCount,
		ViewCount:      story.ViewCount,
		CreatedAt:      story.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      story.UpdatedAt.Format(time.RFC3339),
	}

	if story.Author != nil {
		detail.Author = buildAuthorInfo(story.Author)
	}
	if story.Category != nil {
		detail.Category = story.Category.Name
	}
	if story.SubCategory != nil {
		detail.SubCategory = story.SubCategory.Name
	}

	if viewerID != 0 {
		// 状态查询失败时按未点赞/未收藏展示，只记日志
		liked, err := s.interactionRepo.StoryLikeExists(story.ID, viewerID)
		if err != nil {
			logger.Log.Warnf("Failed to query like state for story %d: %v", story.ID, err)
		}
		saved, err := s.interactionRepo.SavedExists(viewerID, story.ID)
		if err != nil {
			logger.Log.Warnf("Failed to query save state for story %d: %v", story.ID, err)
		}
		detail.IsLiked = liked
		detail.IsSaved = saved
	}

	return detail
}

// buildBlockItems 段落与引用块渲染 Markdown，视频块补全嵌入地址
func (s *StoryService) buildBlockItems(blocks []*model.ContentBlock) []*dto.ContentBlockItem {
	items := make([]*dto.ContentBlockItem, len(blocks))
	for i, b := range blocks {
		item := &dto.ContentBlockItem{
			BlockType:    b.BlockType,
			Position:     b.Position,
			Text:         b.Text,
			ImageURL:     b.ImageURL,
			VideoURL:     b.VideoURL,
			CodeLanguage: b.CodeLanguage,
		}
		switch b.BlockType {
		case model.BlockTypeParagraph, model.BlockTypeBlockquote:
			item.HTML = render.Markdown(b.Text)
		case model.BlockTypeYoutube:
			item.VideoID = render.YoutubeID(b.VideoURL)
		}
		items[i] = item
	}
	return items
}

func tagNames(tags []*model.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}

func buildAuthorInfo(a *model.Author) *dto.AuthorInfo {
	return &dto.AuthorInfo{
		ID:        a.ID,
		UUID:      a.UUID,
		Username:  a.Username,
		FullName:  a.FullName,
		AvatarURL: a.AvatarURL,
	}
}
