package api

import (
	"github.com/gin-gonic/gin"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/api/handler"
	"github.com/linuxbro/blog_go_server/internal/api/middleware"
)

type Router struct {
	authHandler        *handler.AuthHandler
	storyHandler       *handler.StoryHandler
	commentHandler     *handler.CommentHandler
	interactionHandler *handler.InteractionHandler
	authorHandler      *handler.AuthorHandler
	siteHandler        *handler.SiteHandler
	cfg                *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	storyHandler *handler.StoryHandler,
	commentHandler *handler.CommentHandler,
	interactionHandler *handler.InteractionHandler,
	authorHandler *handler.AuthorHandler,
	siteHandler *handler.SiteHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:        authHandler,
		storyHandler:       storyHandler,
		commentHandler:     commentHandler,
		interactionHandler: interactionHandler,
		authorHandler:      authorHandler,
		siteHandler:        siteHandler,
		cfg:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/github", r.authHandler.GithubAuth)
			auth.GET("/github/callback", r.authHandler.GithubCallback)
			auth.GET("/google", r.authHandler.GoogleAuth)
			auth.GET("/google/callback", r.authHandler.GoogleCallback)
		}

		// 公开接口 - 分类与标签
		api.GET("/categories", r.storyHandler.Categories)
		api.GET("/categories/:id/sub-categories", r.storyHandler.SubCategories)
		api.GET("/tags", r.storyHandler.Tags)

		// 公开接口 - 站点内容
		api.GET("/site/:section", r.siteHandler.GetSection)

		// 公开接口 - 文章与评论（可选认证，登录后附带点赞收藏状态）
		stories := api.Group("/stories")
		stories.Use(middleware.OptionalAuth(r.cfg.JWT.Secret))
		{
			stories.GET("", r.storyHandler.List)
			stories.GET("/popular", r.storyHandler.Popular)
			stories.GET("/trending", r.storyHandler.Trending)
			stories.GET("/banners", r.storyHandler.Banners)
			stories.GET("/:uuid", r.storyHandler.Get)
			stories.GET("/:uuid/related", r.storyHandler.Related)
			stories.GET("/:uuid/comments", r.commentHandler.List)
		}

		// 公开接口 - 作者主页（可选认证，登录后附带关注状态）
		authorsPublic := api.Group("/authors")
		authorsPublic.Use(middleware.OptionalAuth(r.cfg.JWT.Secret))
		{
			authorsPublic.GET("/:username", r.authorHandler.GetProfile)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			// 用户
			user := authenticated.Group("/user")
			{
				user.GET("/profile", r.authHandler.GetProfile)
				user.PUT("/profile", r.authHandler.UpdateProfile)
				user.GET("/stories", r.storyHandler.ListMine)
				user.GET("/saved", r.interactionHandler.ListSaved)
				user.GET("/feed", r.interactionHandler.ListFeed)
			}

			// 文章写操作
			authenticated.POST("/stories", r.storyHandler.Create)
			authenticated.PUT("/stories/:uuid", r.storyHandler.Update)
			authenticated.DELETE("/stories/:uuid", r.storyHandler.Delete)

			// 文章互动
			authenticated.POST("/stories/:uuid/like", r.interactionHandler.ToggleLike)
			authenticated.POST("/stories/:uuid/save", r.interactionHandler.ToggleSave)
			authenticated.POST("/stories/:uuid/view", r.interactionHandler.RecordView)

			// 评论
			authenticated.POST("/stories/:uuid/comments", r.commentHandler.Create)
			authenticated.DELETE("/comments/:id", r.commentHandler.Delete)
			authenticated.POST("/comments/:id/like", r.commentHandler.ToggleLike)

			// 关注
			authenticated.POST("/authors/:username/follow", r.authorHandler.ToggleFollow)
		}
	}

	return engine
}
