package catalog

import (
	"context"
	"strings"
	"time"

	"recipe-recommender/internal/core/recommend"
	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜目錄服務
// 目錄裡同時存放種子、使用者投稿、後端同步與 AI 生成的食譜，
// 全部先過 Normalizer 再入庫，庫內不存在形狀不完整的食譜
type Service struct {
	repo Repository
}

// NewService 創建食譜目錄服務
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Bootstrap 將種子食譜寫入目錄，已存在的 ID 不覆寫
func (s *Service) Bootstrap(ctx context.Context) error {
	seeded := 0
	for _, recipe := range SeedRecipes() {
		if _, err := s.repo.Get(ctx, recipe.ID); err == nil {
			continue
		}
		if err := s.repo.Put(ctx, recipe); err != nil {
			return err
		}
		seeded++
	}
	common.LogInfo("種子食譜已載入",
		zap.Int("新增數量", seeded),
	)
	return nil
}

// All 按寫入順序回傳全部食譜
func (s *Service) All(ctx context.Context) ([]common.Recipe, error) {
	return s.repo.All(ctx)
}

// Get 取得單一食譜
func (s *Service) Get(ctx context.Context, id string) (common.Recipe, error) {
	return s.repo.Get(ctx, id)
}

// AddUser 新增使用者投稿的食譜
// payload 先正規化，空 ID 配發 UUID，來源強制標為 user
func (s *Service) AddUser(ctx context.Context, raw map[string]interface{}) (common.Recipe, error) {
	recipe := recommend.NormalizeRecipeAs(raw, common.OriginUser)
	recipe.Origin = common.OriginUser
	recipe.IsUserRecipe = true
	return s.add(ctx, recipe)
}

// AddGenerated 新增 AI 生成的食譜
func (s *Service) AddGenerated(ctx context.Context, raw map[string]interface{}) (common.Recipe, error) {
	recipe := recommend.NormalizeRecipeAs(raw, common.OriginAI)
	recipe.Origin = common.OriginAI
	return s.add(ctx, recipe)
}

// Remove 刪除食譜
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

func (s *Service) add(ctx context.Context, recipe common.Recipe) (common.Recipe, error) {
	if strings.TrimSpace(recipe.ID) == "" {
		recipe.ID = common.GenerateUUID()
	}
	if recipe.CreatedAt == "" {
		recipe.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.repo.Put(ctx, recipe); err != nil {
		return common.Recipe{}, err
	}
	common.LogInfo("食譜已入庫",
		zap.String("食譜ID", recipe.ID),
		zap.String("名稱", recipe.Name),
		zap.String("來源", string(recipe.Origin)),
	)
	return recipe, nil
}
