package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalesces(t *testing.T) {
	var calls int64
	d := NewDebouncer(30*time.Millisecond, 0, func() {
		atomic.AddInt64(&calls, 1)
	})
	defer d.Close()

	d.Trigger()
	d.Trigger()
	d.Trigger()

	assert.Equal(t, 3, d.Pending())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	assert.Equal(t, 0, d.Pending())
}

func TestDebouncerMaxHeldFiresImmediately(t *testing.T) {
	var calls int64
	d := NewDebouncer(time.Hour, 2, func() {
		atomic.AddInt64(&calls, 1)
	})
	defer d.Close()

	d.Trigger()
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))

	d.Trigger() // 達到上限，不等視窗

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestDebouncerClosedIgnoresTriggers(t *testing.T) {
	var calls int64
	d := NewDebouncer(10*time.Millisecond, 0, func() {
		atomic.AddInt64(&calls, 1)
	})

	d.Close()
	d.Trigger()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
	assert.Equal(t, 0, d.Pending())
}
