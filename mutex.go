package guard

import (
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"

	"github.com/Tap30/guard-go/adapters"
)

// Mutex is a mutual-exclusion cell holding a value of type T.
//
// A Mutex becomes poisoned when a holder panics while the lock is held and
// the guard's Unlock was deferred directly. Once poisoned, every subsequent
// Lock, TryLock and RunAtomic reports a *PoisonError. Poisoning is permanent.
type Mutex[T any] struct {
	mu       sync.Mutex
	value    T
	poisoned atomic.Bool
	cause    any           // guarded by mu
	disposed bool          // guarded by mu
	logger   LoggerAdapter // guarded by mu
}

// NewMutex creates a new unlocked, unpoisoned cell around value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value, logger: adapters.NewNoOpLoggerAdapter()}
}

// SetLoggerAdapter sets the logger used to report poisoning.
// It blocks while the lock is held.
func (m *Mutex[T]) SetLoggerAdapter(logger LoggerAdapter) {
	if logger == nil {
		logger = adapters.NewNoOpLoggerAdapter()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

// Lock blocks until the lock is available and returns a guard over the value.
// The caller must release it with Unlock, preferably via defer.
func (m *Mutex[T]) Lock() (*MutexGuard[T], error) {
	m.mu.Lock()
	return m.acquired()
}

// TryLock acquires the lock without blocking. It returns ErrWouldBlock if
// the lock is held elsewhere.
func (m *Mutex[T]) TryLock() (*MutexGuard[T], error) {
	if !m.mu.TryLock() {
		return nil, ErrWouldBlock
	}
	return m.acquired()
}

// acquired must be called with mu held.
func (m *Mutex[T]) acquired() (*MutexGuard[T], error) {
	if m.disposed {
		m.mu.Unlock()
		return nil, ErrReleased
	}
	if m.poisoned.Load() {
		cause := m.cause
		m.mu.Unlock()
		return nil, &PoisonError{Value: cause}
	}
	return &MutexGuard[T]{m: m}, nil
}

// IsPoisoned reports whether a holder has panicked while holding the lock.
func (m *Mutex[T]) IsPoisoned() bool {
	return m.poisoned.Load()
}

// RunAtomic executes a task with exclusive access to the value.
// A panic inside task poisons the cell and is re-raised.
func (m *Mutex[T]) RunAtomic(task func(value *T) error) error {
	g, err := m.Lock()
	if err != nil {
		return err
	}
	defer g.Unlock()
	return task(g.Value())
}

// poison must be called with mu held.
func (m *Mutex[T]) poison(cause any) {
	m.cause = cause
	m.poisoned.Store(true)
	m.logger.Warn("Mutex poisoned by panicking holder: %v", cause)
	m.logger.Debug("Poisoning panic stack:\n%s", debug.Stack())
}

// dispose takes the value out of the cell. Later Lock calls report
// ErrReleased.
func (m *Mutex[T]) dispose() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	value := m.value
	var zero T
	m.value = zero
	m.disposed = true
	return value
}

// MutexGuard grants exclusive access to the value of a locked Mutex.
// It must not be used after Unlock.
type MutexGuard[T any] struct {
	m        *Mutex[T]
	released bool
}

// Value returns a pointer to the guarded value, valid until Unlock.
func (g *MutexGuard[T]) Value() *T {
	g.mustHold()
	return &g.m.value
}

// Get returns a copy of the guarded value.
func (g *MutexGuard[T]) Get() T {
	g.mustHold()
	return g.m.value
}

// Set replaces the guarded value.
func (g *MutexGuard[T]) Set(value T) {
	g.mustHold()
	g.m.value = value
}

// Unlock releases the lock.
//
// When deferred directly (defer g.Unlock()) during a panic, Unlock poisons
// the Mutex, releases the lock and continues panicking with the same value.
// The re-raised panic reports Unlock as its origin; the original stack is
// written to the logger at debug level.
func (g *MutexGuard[T]) Unlock() {
	if r := recover(); r != nil {
		g.mustHold()
		g.m.poison(r)
		g.release()
		panic(r)
	}
	g.mustHold()
	g.release()
}

func (g *MutexGuard[T]) release() {
	g.released = true
	g.m.mu.Unlock()
}

func (g *MutexGuard[T]) mustHold() {
	if g.released {
		panic("guard: use of unlocked MutexGuard")
	}
}
