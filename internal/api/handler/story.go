package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linuxbro/blog_go_server/internal/api/middleware"
	"github.com/linuxbro/blog_go_server/internal/model/dto"
	"github.com/linuxbro/blog_go_server/internal/pkg/response"
	"github.com/linuxbro/blog_go_server/internal/service"
)

type StoryHandler struct {
	storyService *service.StoryService
}

func NewStoryHandler(storyService *service.StoryService) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
	}
}

// Create 创建文章
// POST /api/v1/stories
func (h *StoryHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	story, err := h.storyService.Create(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBlockType),
			errors.Is(err, service.ErrInvalidCodeLang),
			errors.Is(err, service.ErrInvalidVideoURL),
			errors.Is(err, service.ErrCategoryNotFound):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "发布成功，等待审核", story)
}

// Get 获取文章详情
// GET /api/v1/stories/:uuid
func (h *StoryHandler) Get(c *gin.Context) {
	viewerID, _ := middleware.GetUserID(c)

	story, err := h.storyService.GetByUUID(c.Param("uuid"), viewerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrStoryNotApproved):
			response.NotFoundError(c, service.ErrStoryNotFound.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, story)
}

// Update 更新文章
// PUT /api/v1/stories/:uuid
func (h *StoryHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.UpdateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	story, err := h.storyService.Update(userID, c.Param("uuid"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrStoryPermission):
			response.PermissionError(c, err.Error())
		case errors.Is(err, service.ErrInvalidBlockType),
			errors.Is(err, service.ErrInvalidCodeLang),
			errors.Is(err, service.ErrInvalidVideoURL),
			errors.Is(err, service.ErrCategoryNotFound):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", story)
}

// Delete 删除文章
// DELETE /api/v1/stories/:uuid
func (h *StoryHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.storyService.Delete(userID, c.Param("uuid")); err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrStoryPermission):
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}

// List 文章列表
// GET /api/v1/stories
func (h *StoryHandler) List(c *gin.Context) {
	var query dto.StoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.storyService.List(&query)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, resp.Total, resp.Page, resp.PageSize, resp.Stories)
}

// ListMine 当前用户的文章列表
// GET /api/v1/user/stories
func (h *StoryHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	resp, err := h.storyService.ListMine(userID, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, resp.Total, resp.Page, resp.PageSize, resp.Stories)
}

// Popular 热门文章
// GET /api/v1/stories/popular
func (h *StoryHandler) Popular(c *gin.Context) {
	items, err := h.storyService.ListPopular()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

// Trending 趋势文章
// GET /api/v1/stories/trending
func (h *StoryHandler) Trending(c *gin.Context) {
	items, err := h.storyService.ListTrending()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

// Related 相关文章
// GET /api/v1/stories/:uuid/related
func (h *StoryHandler) Related(c *gin.Context) {
	items, err := h.storyService.ListRelated(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, service.ErrStoryNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

// Banners 首页横幅
// GET /api/v1/stories/banners
func (h *StoryHandler) Banners(c *gin.Context) {
	items, err := h.storyService.ListBanners()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

// Categories 分类列表
// GET /api/v1/categories
func (h *StoryHandler) Categories(c *gin.Context) {
	categories, err := h.storyService.ListCategories()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, categories)
}

// SubCategories 子分类列表
// GET /api/v1/categories/:id/sub-categories
func (h *StoryHandler) SubCategories(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的分类ID")
		return
	}

	subs, err := h.storyService.ListSubCategories(categoryID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, subs)
}

// Tags 标签列表
// GET /api/v1/tags
func (h *StoryHandler) Tags(c *gin.Context) {
	tags, err := h.storyService.ListTags()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, tags)
}
