package main

import (
	"fmt"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/api"
	"github.com/linuxbro/blog_go_server/internal/api/handler"
	"github.com/linuxbro/blog_go_server/internal/database"
	"github.com/linuxbro/blog_go_server/internal/pkg/logger"
	"github.com/linuxbro/blog_go_server/internal/pkg/oauth"
	"github.com/linuxbro/blog_go_server/internal/repository"
	"github.com/linuxbro/blog_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Server.Mode)

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		logger.Log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Log.Info("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatalf("Failed to connect redis: %v", err)
	}
	logger.Log.Info("Redis connected")

	// OAuth state 存储
	stateStore := oauth.NewStateStore(rdb)

	// 初始化 Repository
	authorRepo := repository.NewAuthorRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(authorRepo, cfg)
	storyService := service.NewStoryService(storyRepo, taxonomyRepo, interactionRepo, cfg)
	commentService := service.NewCommentService(commentRepo, storyRepo, authorRepo, interactionRepo, cfg)
	interactionService := service.NewInteractionService(interactionRepo, storyRepo, cfg)
	authorService := service.NewAuthorService(authorRepo, storyRepo, interactionRepo, cfg)
	siteService := service.NewSiteService(siteRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService, stateStore)
	storyHandler := handler.NewStoryHandler(storyService)
	commentHandler := handler.NewCommentHandler(commentService)
	interactionHandler := handler.NewInteractionHandler(interactionService)
	authorHandler := handler.NewAuthorHandler(authorService)
	siteHandler := handler.NewSiteHandler(siteService)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		storyHandler,
		commentHandler,
		interactionHandler,
		authorHandler,
		siteHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Log.Infof("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
