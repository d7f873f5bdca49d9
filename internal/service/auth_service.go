package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/model"
	"github.com/linuxbro/blog_go_server/internal/model/dto"
	"github.com/linuxbro/blog_go_server/internal/pkg/jwt"
	"github.com/linuxbro/blog_go_server/internal/pkg/oauth"
	"github.com/linuxbro/blog_go_server/internal/repository"
)

var (
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrUsernameExists     = errors.New("用户名已被使用")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
)

type AuthService struct {
	authorRepo  *repository.AuthorRepository
	cfg         *config.Config
	githubOAuth *oauth.GithubOAuth
	googleOAuth *oauth.GoogleOAuth
}

func NewAuthService(authorRepo *repository.AuthorRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		authorRepo: authorRepo,
		cfg:        cfg,
		githubOAuth: oauth.NewGithubOAuth(
			cfg.OAuth.Github.ClientID,
			cfg.OAuth.Github.ClientSecret,
			cfg.OAuth.Github.RedirectURI,
		),
		googleOAuth: oauth.NewGoogleOAuth(
			cfg.OAuth.Google.ClientID,
			cfg.OAuth.Google.ClientSecret,
			cfg.OAuth.Google.RedirectURI,
		),
	}
}

// Register 用户注册
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.authorRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	exists, err = s.authorRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	passwordStr := string(hashedPassword)
	author := &model.Author{
		UUID:         uuid.NewString(),
		Username:     req.Username,
		Email:        &req.Email,
		PasswordHash: &passwordStr,
	}

	if err := s.authorRepo.Create(author); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		UserID: author.ID,
	}, nil
}

// Login 用户登录
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	author, err := s.authorRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 纯 OAuth 账户没有密码
	if author.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*author.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(author.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  s.buildUserInfo(author),
	}, nil
}

// GetUserByID 根据 ID 获取用户
func (s *AuthService) GetUserByID(id int64) (*model.Author, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return author, nil
}

// UpdateProfile 更新个人资料
func (s *AuthService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	author, err := s.authorRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != nil && *req.Username != author.Username {
		exists, err := s.authorRepo.ExistsByUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameExists
		}
		author.Username = *req.Username
	}
	if req.FullName != nil {
		author.FullName = *req.FullName
	}
	if req.Bio != nil {
		author.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		author.AvatarURL = *req.AvatarURL
	}
	if req.Website != nil {
		author.Website = *req.Website
	}
	if req.TwitterHandle != nil {
		author.TwitterHandle = *req.TwitterHandle
	}

	if err := s.authorRepo.Update(author); err != nil {
		return nil, err
	}
	return s.buildUserInfo(author), nil
}

// GetGithubAuthURL 获取 GitHub 授权 URL
func (s *AuthService) GetGithubAuthURL(state string) string {
	return s.githubOAuth.GetAuthURL(state)
}

// GetGoogleAuthURL 获取 Google 授权 URL
func (s *AuthService) GetGoogleAuthURL(state string) string {
	return s.googleOAuth.GetAuthURL(state)
}

// GithubCallback 处理 GitHub OAuth 回调
func (s *AuthService) GithubCallback(ctx context.Context, code string) (*dto.LoginResponse, error) {
	token, err := s.githubOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	githubUser, err := s.githubOAuth.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get github user: %w", err)
	}

	githubIDStr := fmt.Sprintf("%d", githubUser.ID)

	author, err := s.authorRepo.GetByGithubID(githubIDStr)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if author == nil {
		author = &model.Author{
			UUID:      uuid.NewString(),
			Username:  githubUser.Login,
			GithubID:  &githubIDStr,
			FullName:  githubUser.Name,
			AvatarURL: githubUser.AvatarURL,
		}
		if githubUser.Email != "" {
			author.Email = &githubUser.Email
		}

		// 确保用户名唯一
		exists, _ := s.authorRepo.ExistsByUsername(author.Username)
		if exists {
			author.Username = fmt.Sprintf("%s_%d", githubUser.Login, githubUser.ID)
		}

		if err := s.authorRepo.Create(author); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	jwtToken, err := jwt.GenerateToken(author.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: jwtToken,
		User:  s.buildUserInfo(author),
	}, nil
}

// GoogleCallback 处理 Google OAuth 回调
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*dto.LoginResponse, error) {
	token, err := s.googleOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	googleUser, err := s.googleOAuth.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get google user: %w", err)
	}

	author, err := s.authorRepo.GetByGoogleID(googleUser.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if author == nil {
		// 同邮箱账户直接绑定 Google ID
		if googleUser.Email != "" {
			existing, err := s.authorRepo.GetByEmail(googleUser.Email)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if existing != nil {
				existing.GoogleID = &googleUser.ID
				if err := s.authorRepo.Update(existing); err != nil {
					return nil, err
				}
				author = existing
			}
		}
	}

	if author == nil {
		username := usernameFromEmail(googleUser.Email, googleUser.ID)
		author = &model.Author{
			UUID:      uuid.NewString(),
			Username:  username,
			GoogleID:  &googleUser.ID,
			FullName:  googleUser.Name,
			AvatarURL: googleUser.AvatarURL,
		}
		if googleUser.Email != "" {
			author.Email = &googleUser.Email
		}

		exists, _ := s.authorRepo.ExistsByUsername(author.Username)
		if exists {
			author.Username = fmt.Sprintf("%s_%d", username, time.Now().Unix())
		}

		if err := s.authorRepo.Create(author); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	jwtToken, err := jwt.GenerateToken(author.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: jwtToken,
		User:  s.buildUserInfo(author),
	}, nil
}

func (s *AuthService) buildUserInfo(author *model.Author) *dto.UserInfo {
	info := &dto.UserInfo{
		ID:            author.ID,
		UUID:          author.UUID,
		Username:      author.Username,
		FullName:      author.FullName,
		AvatarURL:     author.AvatarURL,
		Bio:           author.Bio,
		Website:       author.Website,
		TwitterHandle: author.TwitterHandle,
		CreatedAt:     author.CreatedAt.Format(time.RFC3339),
	}

	if author.Email != nil {
		info.Email = *author.Email
	}

	return info
}

func usernameFromEmail(email, fallback string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	if email != "" {
		return email
	}
	return "user_" + fallback
}
