// Package schedule implements the Scheduler port over runtime timers, plus
// a manual variant for deterministic tests.
package schedule

import (
	"sync"
	"time"

	"storefront/internal/domain/service"
)

// timerScheduler runs tasks on time.AfterFunc timers.
type timerScheduler struct{}

// NewScheduler is the constructor for the timer-backed scheduler.
func NewScheduler() service.Scheduler {
	return &timerScheduler{}
}

// Schedule runs fn once after the delay unless the returned cancel is called
// first.
func (s *timerScheduler) Schedule(delay time.Duration, fn func()) service.CancelFunc {
	timer := time.AfterFunc(delay, fn)

	return func() bool {
		return timer.Stop()
	}
}

// Manual is a Scheduler whose tasks fire only when the test calls Fire. It
// keeps tasks in submission order.
type Manual struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// NewManual is the constructor for the test scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule records the task without starting any timer.
func (m *Manual) Schedule(delay time.Duration, fn func()) service.CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := &manualTask{delay: delay, fn: fn}
	m.tasks = append(m.tasks, task)

	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if task.cancelled || task.fired {
			return false
		}
		task.cancelled = true

		return true
	}
}

// Fire runs the oldest task that is still pending and reports whether one
// ran.
func (m *Manual) Fire() bool {
	m.mu.Lock()
	var next *manualTask
	for _, task := range m.tasks {
		if !task.cancelled && !task.fired {
			next = task

			break
		}
	}
	if next == nil {
		m.mu.Unlock()

		return false
	}
	next.fired = true
	fn := next.fn
	m.mu.Unlock()

	fn()

	return true
}

// Pending counts tasks that have neither fired nor been cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	for _, task := range m.tasks {
		if !task.cancelled && !task.fired {
			n++
		}
	}

	return n
}
