// Package store owns the storefront state. It is created once at startup
// and lives for the whole process; every user intent becomes one Apply call
// that replaces the snapshot wholesale, so partial mutations are never
// observable.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/domain/state"

	"go.uber.org/fx"
)

// TaskKey names one of the store's scheduled single-shot tasks. Scheduling
// under an occupied key supersedes the previous task.
type TaskKey string

const (
	// TaskOrderProcessing is the simulated payment latency.
	TaskOrderProcessing TaskKey = "order-processing"
	// TaskSuccessReturn is the delayed return from the success screen. Any
	// intent applied while it is pending cancels it.
	TaskSuccessReturn TaskKey = "success-return"
)

// Subscriber receives the fresh snapshot after every applied intent. The
// rendering layer registers here to re-render.
type Subscriber func(*state.State)

// Store holds the current snapshot and the pending scheduled tasks.
type Store struct {
	mu          sync.Mutex
	current     *state.State
	pending     map[TaskKey]service.CancelFunc
	subscribers []Subscriber

	logger    *slog.Logger
	scheduler service.Scheduler
}

// Params defines the parameters required for the store.
type Params struct {
	fx.In
	fx.Lifecycle

	Initial   *state.State
	Logger    *slog.Logger
	Scheduler service.Scheduler
}

// New is the fx constructor for the store. The lifecycle hook cancels every
// pending task on shutdown so no timer outlives the state it would mutate.
func New(params Params) *Store {
	s := NewStore(params.Initial, params.Logger, params.Scheduler)

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.CancelAll()

			return nil
		},
	})

	return s
}

// NewStore builds a store without lifecycle wiring, for tests and for
// callers that manage teardown themselves.
func NewStore(initial *state.State, logger *slog.Logger, scheduler service.Scheduler) *Store {
	return &Store{
		current:   initial.Clone(),
		pending:   make(map[TaskKey]service.CancelFunc),
		logger:    logger,
		scheduler: scheduler,
	}
}

// Snapshot returns a deep copy of the current state. Callers may read it
// freely; writing it has no effect on the store.
func (s *Store) Snapshot() *state.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current.Clone()
}

// Apply runs the reducer against a clone of the current snapshot and swaps
// the result in. A pending success-return task is cancelled first: an intent
// arriving before the auto-return fires supersedes it.
func (s *Store) Apply(intent string, reducer state.Reducer) {
	s.mu.Lock()
	s.cancelLocked(TaskSuccessReturn)

	next := s.current.Clone()
	reducer(next)
	s.current = next

	subscribers := make([]Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	snapshot := next.Clone()
	s.mu.Unlock()

	s.logger.Debug("intent applied", "intent", intent, "screen", snapshot.Nav.Active)

	for _, subscriber := range subscribers {
		subscriber(snapshot)
	}
}

// Subscribe registers a callback for every future snapshot.
func (s *Store) Subscribe(subscriber Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, subscriber)
}

// Schedule arms a single-shot task under the given key, superseding any
// task already pending there. The task unregisters itself before running so
// its own Apply does not cancel it.
func (s *Store) Schedule(key TaskKey, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(key)
	s.pending[key] = s.scheduler.Schedule(delay, func() {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel aborts the pending task under the key, if any, and reports whether
// one was still pending.
func (s *Store) Cancel(key TaskKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancelLocked(key)
}

// CancelAll aborts every pending task. Used on shutdown.
func (s *Store) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.pending {
		s.cancelLocked(key)
	}
}

func (s *Store) cancelLocked(key TaskKey) bool {
	cancel, ok := s.pending[key]
	if !ok {
		return false
	}
	delete(s.pending, key)

	return cancel()
}
