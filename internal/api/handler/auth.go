package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linuxbro/blog_go_server/internal/api/middleware"
	"github.com/linuxbro/blog_go_server/internal/model/dto"
	"github.com/linuxbro/blog_go_server/internal/pkg/oauth"
	"github.com/linuxbro/blog_go_server/internal/pkg/response"
	"github.com/linuxbro/blog_go_server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	stateStore  *oauth.StateStore
}

func NewAuthHandler(authService *service.AuthService, stateStore *oauth.StateStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		stateStore:  stateStore,
	}
}

// Register 用户注册
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrUsernameExists):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "注册成功", resp)
}

// Login 用户登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.AuthError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "登录成功", resp)
}

// GetProfile 获取当前用户信息
// GET /api/v1/user/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	author, err := h.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	info := &dto.UserInfo{
		ID:            author.ID,
		UUID:          author.UUID,
		Username:      author.Username,
		FullName:      author.FullName,
		AvatarURL:     author.AvatarURL,
		Bio:           author.Bio,
		Website:       author.Website,
		TwitterHandle: author.TwitterHandle,
	}
	if author.Email != nil {
		info.Email = *author.Email
	}

	response.Success(c, info)
}

// UpdateProfile 更新个人资料
// PUT /api/v1/user/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	info, err := h.authService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrUsernameExists):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", info)
}

// GithubAuth 跳转 GitHub 授权页
// GET /api/v1/auth/github
func (h *AuthHandler) GithubAuth(c *gin.Context) {
	state := c.Query("state")
	if state == "" && h.stateStore != nil {
		generated, err := h.stateStore.GenerateState(c.Request.Context(), c.Query("redirect_uri"))
		if err != nil {
			response.ServerError(c, "")
			return
		}
		state = generated
	}

	c.Redirect(http.StatusTemporaryRedirect, h.authService.GetGithubAuthURL(state))
}

// GithubCallback 处理 GitHub OAuth 回调
// GET /api/v1/auth/github/callback
func (h *AuthHandler) GithubCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.ParamError(c, "缺少授权码")
		return
	}

	if h.stateStore != nil {
		if _, err := h.stateStore.ValidateState(c.Request.Context(), c.Query("state")); err != nil {
			response.ParamError(c, "state 无效或已过期")
			return
		}
	}

	resp, err := h.authService.GithubCallback(c.Request.Context(), code)
	if err != nil {
		response.ServerError(c, "GitHub 登录失败")
		return
	}

	response.SuccessWithMessage(c, "登录成功", resp)
}

// GoogleAuth 跳转 Google 授权页
// GET /api/v1/auth/google
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	state := c.Query("state")
	if state == "" && h.stateStore != nil {
		generated, err := h.stateStore.GenerateState(c.Request.Context(), c.Query("redirect_uri"))
		if err != nil {
			response.ServerError(c, "")
			return
		}
		state = generated
	}

	c.Redirect(http.StatusTemporaryRedirect, h.authService.GetGoogleAuthURL(state))
}

// GoogleCallback 处理 Google OAuth 回调
// GET /api/v1/auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.ParamError(c, "缺少授权码")
		return
	}

	if h.stateStore != nil {
		if _, err := h.stateStore.ValidateState(c.Request.Context(), c.Query("state")); err != nil {
			response.ParamError(c, "state 无效或已过期")
			return
		}
	}

	resp, err := h.authService.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		response.ServerError(c, "Google 登录失败")
		return
	}

	response.SuccessWithMessage(c, "登录成功", resp)
}
