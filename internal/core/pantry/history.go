package pantry

import (
	"sync"

	"recipe-recommender/internal/pkg/common"
)

// RecentlyViewedLimit 最近瀏覽清單的上限
const RecentlyViewedLimit = 20

// HistoryService 收藏與最近瀏覽紀錄
// 單一使用者情境，程序內保存即可
type HistoryService struct {
	mu        sync.RWMutex
	favorites []string
	viewed    []string
}

// NewHistoryService 創建瀏覽紀錄服務
func NewHistoryService() *HistoryService {
	return &HistoryService{
		favorites: []string{},
		viewed:    []string{},
	}
}

// ToggleFavorite 切換收藏狀態，回傳切換後是否為收藏
func (s *HistoryService) ToggleFavorite(recipeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.favorites {
		if id == recipeID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return false
		}
	}
	s.favorites = append(s.favorites, recipeID)
	return true
}

// MarkViewed 記錄一次瀏覽
// 最新的排最前面，重複瀏覽把舊紀錄搬到最前，總數不超過上限
func (s *HistoryService) MarkViewed(recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.viewed)+1)
	out = append(out, recipeID)
	for _, id := range s.viewed {
		if id != recipeID {
			out = append(out, id)
		}
	}
	if len(out) > RecentlyViewedLimit {
		out = out[:RecentlyViewedLimit]
	}
	s.viewed = out
}

// History 回傳目前的紀錄快照
func (s *HistoryService) History() common.History {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]string, len(s.favorites))
	copy(favorites, s.favorites)
	viewed := make([]string, len(s.viewed))
	copy(viewed, s.viewed)

	return common.History{
		Favorites:      favorites,
		RecentlyViewed: viewed,
	}
}
