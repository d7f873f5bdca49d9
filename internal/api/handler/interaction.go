package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linuxbro/blog_go_server/internal/api/middleware"
	"github.com/linuxbro/blog_go_server/internal/pkg/response"
	"github.com/linuxbro/blog_go_server/internal/service"
)

type InteractionHandler struct {
	interactionService *service.InteractionService
}

func NewInteractionHandler(interactionService *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
	}
}

// ToggleLike 文章点赞开关
// POST /api/v1/stories/:uuid/like
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	result, err := h.interactionService.ToggleStoryLike(userID, c.Param("uuid"))
	if err != nil {
		h.storyError(c, err)
		return
	}

	response.Success(c, result)
}

// ToggleSave 文章收藏开关
// POST /api/v1/stories/:uuid/save
func (h *InteractionHandler) ToggleSave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	result, err := h.interactionService.ToggleSave(userID, c.Param("uuid"))
	if err != nil {
		h.storyError(c, err)
		return
	}

	response.Success(c, result)
}

// RecordView 记录浏览
// POST /api/v1/stories/:uuid/view
func (h *InteractionHandler) RecordView(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.interactionService.RecordView(userID, c.Param("uuid")); err != nil {
		h.storyError(c, err)
		return
	}

	response.Success(c, nil)
}

// ListSaved 收藏列表
// GET /api/v1/user/saved
func (h *InteractionHandler) ListSaved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	resp, err := h.interactionService.ListSaved(userID, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, resp.Total, resp.Page, resp.PageSize, resp.Stories)
}

// ListFeed 关注作者的文章流
// GET /api/v1/user/feed
func (h *InteractionHandler) ListFeed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	resp, err := h.interactionService.ListFeed(userID, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, resp.Total, resp.Page, resp.PageSize, resp.Stories)
}

func (h *InteractionHandler) storyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStoryNotFound):
		response.NotFoundError(c, err.Error())
	case errors.Is(err, service.ErrStoryNotApproved):
		response.NotFoundError(c, service.ErrStoryNotFound.Error())
	default:
		response.ServerError(c, "")
	}
}
