package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"recipe-recommender/internal/core/ai/cache"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// ContentGenerator 模型呼叫介面，測試時可以換成假實作
type ContentGenerator interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// ResponseStore 第二層快取介面（Redis）
type ResponseStore interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt, value string) error
}

// Service AI 食譜生成服務
// 回傳的是未驗證的 payload，呼叫端必須先過 Normalizer 再入庫
type Service struct {
	config       *config.Config
	generator    ContentGenerator
	cacheManager *cache.Manager
	store        ResponseStore
	mu           sync.Mutex
	lastRequest  time.Time
}

// NewService 創建 AI 食譜生成服務
// cacheManager 與 store 都允許為 nil（快取關閉）
func NewService(cfg *config.Config, generator ContentGenerator, cacheManager *cache.Manager, store ResponseStore) *Service {
	return &Service{
		config:       cfg,
		generator:    generator,
		cacheManager: cacheManager,
		store:        store,
	}
}

// GenerateRecipe 根據庫存食材生成一份食譜 payload
func (s *Service) GenerateRecipe(ctx context.Context, pantry []common.Ingredient) (map[string]interface{}, error) {
	if len(pantry) == 0 {
		return nil, common.NewValidationError("庫存沒有食材，無法生成食譜")
	}
	if err := s.checkRequestRate(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(pantry)

	content, cached := s.lookupCache(ctx, prompt)
	if !cached {
		start := time.Now()
		generated, err := s.generator.GenerateResponse(ctx, prompt)
		common.LogAICall(prompt, time.Since(start), err, "")
		if err != nil {
			return nil, fmt.Errorf("failed to generate recipe: %w", err)
		}
		content = generated
		s.storeCache(ctx, prompt, content)
	}

	raw, err := parsePayload(content)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// lookupCache 依序查程序內快取與 Redis，Redis 命中時回填第一層
func (s *Service) lookupCache(ctx context.Context, prompt string) (string, bool) {
	if s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, prompt); err == nil && val != "" {
			common.LogCacheHit("memory", "ai:recipe")
			return val, true
		}
	}
	if s.store != nil {
		if val, err := s.store.Get(ctx, prompt); err == nil && val != "" {
			common.LogCacheHit("redis", "ai:recipe")
			if s.cacheManager != nil {
				_ = s.cacheManager.Set(ctx, prompt, val)
			}
			return val, true
		}
	}
	return "", false
}

func (s *Service) storeCache(ctx context.Context, prompt, content string) {
	if s.cacheManager != nil {
		_ = s.cacheManager.Set(ctx, prompt, content)
	}
	if s.store != nil {
		if err := s.store.Set(ctx, prompt, content); err != nil {
			common.LogWarn("寫入 Redis 快取失敗",
				zap.Error(err),
			)
		}
	}
}

// checkRequestRate 檢查請求頻率
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && now.Sub(s.lastRequest) < s.config.RateLimit.Window {
		return errors.New("request rate limit exceeded")
	}

	s.lastRequest = now
	return nil
}

// parsePayload 把模型回應還原成 JSON 物件
// 模型常會包 code fence 或在前後加說明文字，先把物件切出來再解析
func parsePayload(content string) (map[string]interface{}, error) {
	jsonText := common.ExtractJSONObject(content)
	if strings.TrimSpace(jsonText) == "" {
		return nil, fmt.Errorf("no JSON object in AI response")
	}

	var raw map[string]interface{}
	if err := common.ParseJSON(jsonText, &raw); err != nil {
		// 模型偶爾回傳未加引號的鍵，補救一次
		if retryErr := common.ParseJSON(common.QuoteJSONKeys(jsonText), &raw); retryErr != nil {
			return nil, fmt.Errorf("failed to parse AI response: %w", err)
		}
	}
	return raw, nil
}

// BuildPrompt 由庫存食材組出生成用的 prompt
// 食材名稱排序後再組字串，同一份庫存永遠產生同一個 prompt（快取鍵穩定）
func BuildPrompt(pantry []common.Ingredient) string {
	names := make([]string, 0, len(pantry))
	for _, item := range pantry {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf(`請根據以下冰箱現有食材，設計一道家常食譜（用繁體中文回答）。
食材：%s
要求：
1. 優先使用列出的食材，可以補充少量常備調味料
2. 份量與時間要具體
3. 所有字段都必須使用雙引號，回傳最緊湊的 JSON，不要加任何說明文字

請以以下 JSON 格式返回：
{"name":"菜名","description":"描述","cooking_time":20,"prep_time":10,"servings":2,"difficulty":"easy","category":"korean","dishwashing":"low","late_night_suitable":false,"ingredients":[{"name":"食材","amount":"數量"}],"steps":["步驟"],"tips":["提示"],"nutrition":{"calories":0,"carbohydrate":0,"protein":0,"fat":0,"sodium":0}}`,
		strings.Join(names, "、"))
}
