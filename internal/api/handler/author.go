package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/linuxbro/blog_go_server/internal/api/middleware"
	"github.com/linuxbro/blog_go_server/internal/pkg/response"
	"github.com/linuxbro/blog_go_server/internal/service"
)

type AuthorHandler struct {
	authorService *service.AuthorService
}

func NewAuthorHandler(authorService *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
	}
}

// GetProfile 作者主页
// GET /api/v1/authors/:username
func (h *AuthorHandler) GetProfile(c *gin.Context) {
	viewerID, _ := middleware.GetUserID(c)

	profile, err := h.authorService.GetProfile(c.Param("username"), viewerID)
	if err != nil {
		if errors.Is(err, service.ErrAuthorNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, profile)
}

// ToggleFollow 关注开关
// POST /api/v1/authors/:username/follow
func (h *AuthorHandler) ToggleFollow(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	result, err := h.authorService.ToggleFollow(userID, c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthorNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrSelfFollow):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, result)
}
