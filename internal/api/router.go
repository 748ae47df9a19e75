package api

import (
	"context"
	"fmt"
	"time"

	healthHandler "recipe-recommender/internal/api/handlers/health"
	historyHandler "recipe-recommender/internal/api/handlers/history"
	pantryHandler "recipe-recommender/internal/api/handlers/pantry"
	recipesHandler "recipe-recommender/internal/api/handlers/recipes"
	recommendHandler "recipe-recommender/internal/api/handlers/recommend"
	"recipe-recommender/internal/api/middleware"
	"recipe-recommender/internal/core/ai/cache"
	"recipe-recommender/internal/core/ai/debounce"
	"recipe-recommender/internal/core/ai/openrouter"
	aiSvc "recipe-recommender/internal/core/ai/service"
	"recipe-recommender/internal/core/catalog"
	pantrySvc "recipe-recommender/internal/core/pantry"
	recommendCore "recipe-recommender/internal/core/recommend"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求體大小限制 (1MB)，這個服務只收 JSON
	maxBodySize = 1 << 20
)

// SetupRouter 組裝全部服務與路由
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))

	// 儲存層：Redis 開啟時落地，否則純程序內
	catalogRepo, pantryRepo, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	catalogService := catalog.NewService(catalogRepo)
	if err := catalogService.Bootstrap(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to bootstrap catalog: %w", err)
	}

	pantryService := pantrySvc.NewService(pantryRepo)
	historyService := pantrySvc.NewHistoryService()

	// AI 生成鏈：OpenRouter → 兩層快取 → Normalizer → 目錄
	aiService := buildAIService(cfg, cacheManager)
	if aiService != nil {
		wireRegeneration(cfg, aiService, pantryService, catalogService)
	}

	// 推薦引擎：資料集語系混雜，用同義詞匹配
	engine := recommendCore.NewService(recommendCore.NewAliasMatcher())

	healthH := healthHandler.NewHandler(cfg, cacheManager)
	pantryH := pantryHandler.NewHandler(pantryService)
	recipesH := recipesHandler.NewHandler(catalogService, pantryService, aiService)
	recommendH := recommendHandler.NewHandler(engine, catalogService, pantryService, historyService)
	historyH := historyHandler.NewHandler(historyService, catalogService)

	router.GET("/health", healthH.HealthCheck)
	router.GET("/ready", healthH.ReadinessCheck)
	router.GET("/live", healthH.LivenessCheck)

	api := router.Group("/api/v1")
	{
		pantryGroup := api.Group("/pantry")
		{
			pantryGroup.GET("/ingredients", pantryH.List)
			pantryGroup.POST("/ingredients", pantryH.Add)
			pantryGroup.PUT("/ingredients/:id", pantryH.Update)
			pantryGroup.DELETE("/ingredients/:id", pantryH.Remove)
		}

		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", recipesH.List)
			recipeGroup.GET("/:id", recipesH.Get)
			recipeGroup.POST("", recipesH.Submit)

			generate := recipeGroup.Group("/generate")
			if cfg.RateLimit.Enabled {
				generate.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
			}
			generate.POST("", recipesH.Generate)
		}

		api.POST("/recommend", recommendH.Recommend)
		api.GET("/recommend/sections", recommendH.Sections)

		historyGroup := api.Group("/history")
		{
			historyGroup.GET("", historyH.Get)
			historyGroup.POST("/favorites/:id", historyH.ToggleFavorite)
			historyGroup.POST("/viewed/:id", historyH.MarkViewed)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Bool("ai_enabled", aiService != nil),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

// buildRepositories 依設定選擇儲存後端
func buildRepositories(cfg *config.Config) (catalog.Repository, pantrySvc.Repository, error) {
	if !cfg.Redis.Enabled {
		common.LogInfo("使用程序內儲存")
		return catalog.NewMemoryRepository(), pantrySvc.NewMemoryRepository(), nil
	}

	catalogRepo, err := catalog.NewRedisRepository(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}
	pantryRepo, err := pantrySvc.NewRedisRepository(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pantry repository: %w", err)
	}

	common.LogInfo("使用 Redis 儲存",
		zap.String("addr", cfg.Redis.Addr),
		zap.Int("db", cfg.Redis.DB),
	)
	return catalogRepo, pantryRepo, nil
}

// buildAIService 組裝 AI 生成服務，OpenRouter 關閉時回傳 nil
func buildAIService(cfg *config.Config, cacheManager *cache.Manager) *aiSvc.Service {
	if !cfg.OpenRouter.Enabled {
		common.LogInfo("AI 生成已停用")
		return nil
	}

	client := openrouter.NewClient(cfg)

	var store aiSvc.ResponseStore
	if cfg.Redis.Enabled && cfg.Cache.Enabled {
		redisStore, err := cache.NewRedisStore(&cfg.Redis, &cfg.Cache)
		if err != nil {
			common.LogWarn("Redis 快取初始化失敗，只用程序內快取",
				zap.Error(err),
			)
		} else {
			store = redisStore
		}
	}

	return aiSvc.NewService(cfg, client, cacheManager, store)
}

// wireRegeneration 把庫存變動接到 AI 重新生成
// 變動合併成一次生成，生成結果直接進目錄
func wireRegeneration(cfg *config.Config, aiService *aiSvc.Service, pantryService *pantrySvc.Service, catalogService *catalog.Service) {
	debouncer := debounce.NewDebouncer(cfg.Generate.DebounceWindow, cfg.Generate.MaxQueueSize, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.OpenRouter.Timeout)
		defer cancel()

		pantry, err := pantryService.List(ctx)
		if err != nil || len(pantry) == 0 {
			return
		}

		raw, err := aiService.GenerateRecipe(ctx, pantry)
		if err != nil {
			common.LogWarn("自動生成食譜失敗",
				zap.Error(err),
			)
			return
		}

		if _, err := catalogService.AddGenerated(ctx, raw); err != nil {
			common.LogWarn("自動生成食譜入庫失敗",
				zap.Error(err),
			)
		}
	})

	pantryService.OnChange(debouncer.Trigger)
}
