// Package guard wraps a value behind shared ownership plus a mutex and lets
// callers run closures against the shared cell without cloning handles by
// hand.
//
// Before:
//
//	m := guard.NewMutex(NewIndicator())
//	g, err := m.Lock()
//	if err != nil {
//		return err
//	}
//	defer g.Unlock()
//	g.Value().DoSomething()
//
// After:
//
//	indicator := guard.New(NewIndicator())
//	err := indicator.Run(func(m *guard.Mutex[Indicator]) error {
//		return m.RunAtomic(func(i *Indicator) error {
//			return i.DoSomething()
//		})
//	})
package guard

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/Tap30/guard-go/adapters"
)

type shared[T any] struct {
	mutex     *Mutex[T]
	owners    atomic.Int64
	onRelease func(T) error
	logger    LoggerAdapter
}

// SharedGuard is one owner's handle to a mutex-guarded value.
// Handles made with Clone share the same value; the value is disposed once
// the last handle is released.
type SharedGuard[T any] struct {
	shared   *shared[T]
	released atomic.Bool
}

// New wraps value in a Mutex owned by a single SharedGuard.
func New[T any](value T) *SharedGuard[T] {
	return NewWithConfig(value, Config[T]{})
}

// NewWithConfig is New with a release hook and adapters.
func NewWithConfig[T any](value T, config Config[T]) *SharedGuard[T] {
	logger := config.Adapters.LoggerAdapter
	if logger == nil {
		logger = adapters.NewNoOpLoggerAdapter()
	}

	mutex := NewMutex(value)
	mutex.SetLoggerAdapter(logger)

	s := &shared[T]{
		mutex:     mutex,
		onRelease: config.OnRelease,
		logger:    logger,
	}
	s.owners.Store(1)
	return &SharedGuard[T]{shared: s}
}

// Execute calls f exactly once with the shared Mutex and returns its result.
// It does not lock; f decides whether and how to acquire the Mutex, and any
// lock failure or panic inside f reaches the caller unchanged.
func Execute[T, R any](g *SharedGuard[T], f func(*Mutex[T]) R) R {
	return f(g.Mutex())
}

// Run is Execute for closures that only report an error.
func (g *SharedGuard[T]) Run(f func(*Mutex[T]) error) error {
	return Execute(g, f)
}

// Mutex returns the shared Mutex. The pointer does not own the value: once
// the last handle is released, locking it reports ErrReleased.
func (g *SharedGuard[T]) Mutex() *Mutex[T] {
	g.mustBeOwned()
	return g.shared.mutex
}

// Clone returns a new handle to the same value.
func (g *SharedGuard[T]) Clone() *SharedGuard[T] {
	g.mustBeOwned()
	owners := g.shared.owners.Inc()
	g.shared.logger.Debug("SharedGuard cloned, %d owners", owners)
	return &SharedGuard[T]{shared: g.shared}
}

// Owners returns the number of handles not yet released.
func (g *SharedGuard[T]) Owners() int64 {
	return g.shared.owners.Load()
}

// Release gives up this handle's ownership. Releasing the last handle
// disposes the value through Config.OnRelease, or Close if the value is an
// io.Closer. The handle must not be used afterwards.
func (g *SharedGuard[T]) Release() error {
	if !g.released.CompareAndSwap(false, true) {
		return ErrReleased
	}

	owners := g.shared.owners.Dec()
	g.shared.logger.Debug("SharedGuard released, %d owners left", owners)
	if owners > 0 {
		return nil
	}
	return g.shared.dispose()
}

func (s *shared[T]) dispose() error {
	// Poisoning is ignored here; retained *Mutex pointers get ErrReleased.
	value := s.mutex.dispose()

	var err error
	if s.onRelease != nil {
		err = s.onRelease(value)
	} else if closer, ok := any(value).(io.Closer); ok {
		err = closer.Close()
	}
	if err != nil {
		s.logger.Error("Failed to dispose shared value: %v", err)
		return errors.Wrap(err, "guard: dispose shared value")
	}

	s.logger.Debug("Shared value disposed")
	return nil
}

func (g *SharedGuard[T]) mustBeOwned() {
	if g.released.Load() {
		panic("guard: use of released SharedGuard")
	}
}
