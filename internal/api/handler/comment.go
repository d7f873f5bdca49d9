package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linuxbro/blog_go_server/internal/api/middleware"
	"github.com/linuxbro/blog_go_server/internal/model/dto"
	"github.com/linuxbro/blog_go_server/internal/pkg/response"
	"github.com/linuxbro/blog_go_server/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// List 获取文章评论树
// GET /api/v1/stories/:uuid/comments
func (h *CommentHandler) List(c *gin.Context) {
	// 未登录时 viewerID 为 0，点赞状态全部为 false
	viewerID, _ := middleware.GetUserID(c)

	items, total, err := h.commentService.ListByStory(c.Param("uuid"), viewerID)
	if err != nil {
		switch err {
		case service.ErrStoryNotFound, service.ErrStoryNotApproved:
			response.NotFoundError(c, service.ErrStoryNotFound.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, gin.H{
		"total":    total,
		"comments": items,
	})
}

// Create 发表评论或回复
// POST /api/v1/stories/:uuid/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(userID, c.Param("uuid"), &req)
	if err != nil {
		switch err {
		case service.ErrStoryNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrStoryNotApproved:
			response.PermissionError(c, err.Error())
		case service.ErrParentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrParentNotInStory, service.ErrEmptyComment:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "评论成功", comment)
}

// Delete 删除评论
// DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	if err := h.commentService.Delete(userID, commentID); err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrCommentPermission:
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}

// ToggleLike 评论点赞开关
// POST /api/v1/comments/:id/like
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	result, err := h.commentService.ToggleLike(userID, commentID)
	if err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, result)
}
