package debounce

import (
	"sync"
	"time"

	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// Debouncer 把密集的觸發合併成一次執行
// 庫存連續變動（使用者一次加好幾樣食材）時，等到安靜下來才重新生成食譜，
// 期間的觸發全部合併；累積超過上限則立刻執行，避免一直被推遲
type Debouncer struct {
	window  time.Duration
	maxHeld int
	fn      func()

	mu      sync.Mutex
	timer   *time.Timer
	held    int
	fired   int64
	closed  bool
}

// NewDebouncer 創建觸發合併器
// maxHeld <= 0 代表不設累積上限
func NewDebouncer(window time.Duration, maxHeld int, fn func()) *Debouncer {
	return &Debouncer{
		window:  window,
		maxHeld: maxHeld,
		fn:      fn,
	}
}

// Trigger 登記一次觸發
// 視窗內的後續觸發只是重設計時器，不會多執行
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.held++
	if d.maxHeld > 0 && d.held >= d.maxHeld {
		d.fireLocked()
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || d.held == 0 {
			return
		}
		d.fireLocked()
	})
}

// fireLocked 執行回呼，呼叫端必須持有鎖
func (d *Debouncer) fireLocked() {
	held := d.held
	d.held = 0
	d.fired++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	common.LogDebug("合併觸發執行",
		zap.Int("合併次數", held),
		zap.Int64("累計執行", d.fired),
	)

	// 回呼在鎖外執行，避免回呼內再 Trigger 造成死鎖
	go d.fn()
}

// Pending 目前累積、尚未執行的觸發次數
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.held
}

// Close 關閉合併器，之後的觸發一律忽略
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
