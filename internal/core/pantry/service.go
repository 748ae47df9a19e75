package pantry

import (
	"context"
	"strings"
	"time"

	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 庫存服務
// 每次庫存變動會通知訂閱者，AI 生成端靠這個訊號觸發重新生成
type Service struct {
	repo      Repository
	listeners []func()
}

// NewService 創建庫存服務
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// OnChange 註冊庫存變動回呼
// 必須在服務開始處理請求前註冊完畢，之後不再加鎖
func (s *Service) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// List 按加入順序回傳全部食材
func (s *Service) List(ctx context.Context) ([]common.Ingredient, error) {
	return s.repo.All(ctx)
}

// Add 新增食材，空 ID 配發 UUID
func (s *Service) Add(ctx context.Context, ingredient common.Ingredient) (common.Ingredient, error) {
	if err := validate(ingredient); err != nil {
		return common.Ingredient{}, err
	}
	if strings.TrimSpace(ingredient.ID) == "" {
		ingredient.ID = common.GenerateUUID()
	}
	if err := s.repo.Put(ctx, ingredient); err != nil {
		return common.Ingredient{}, err
	}
	common.LogInfo("食材已加入庫存",
		zap.String("食材ID", ingredient.ID),
		zap.String("名稱", ingredient.Name),
	)
	s.notify()
	return ingredient, nil
}

// Update 更新既有食材
func (s *Service) Update(ctx context.Context, ingredient common.Ingredient) (common.Ingredient, error) {
	if err := validate(ingredient); err != nil {
		return common.Ingredient{}, err
	}
	if _, err := s.repo.Get(ctx, ingredient.ID); err != nil {
		return common.Ingredient{}, err
	}
	if err := s.repo.Put(ctx, ingredient); err != nil {
		return common.Ingredient{}, err
	}
	s.notify()
	return ingredient, nil
}

// Remove 刪除食材
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	common.LogInfo("食材已移出庫存",
		zap.String("食材ID", id),
	)
	s.notify()
	return nil
}

func (s *Service) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// validate 檢查食材欄位
// 名稱必填；效期允許留空（代表不追蹤），但填了就必須是合法日期
func validate(ingredient common.Ingredient) error {
	if strings.TrimSpace(ingredient.Name) == "" {
		return common.NewValidationError("食材名稱不能為空")
	}
	if ingredient.ExpirationDate != "" {
		if _, err := time.Parse("2006-01-02", ingredient.ExpirationDate); err != nil {
			return common.NewValidationError("效期格式必須是 YYYY-MM-DD")
		}
	}
	return nil
}
