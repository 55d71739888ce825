package guard

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Tap30/guard-go/adapters"
)

// Re-export adapter types for convenience
type (
	LoggerAdapter = adapters.LoggerAdapter
	LogLevel      = adapters.LogLevel
)

var (
	// ErrPoisoned is matched by every *PoisonError.
	ErrPoisoned = errors.New("guard: mutex poisoned by a panicking holder")
	// ErrWouldBlock is returned by TryLock when another holder owns the lock.
	ErrWouldBlock = errors.New("guard: mutex is locked")
	// ErrReleased is returned when a SharedGuard handle is released twice,
	// and when locking a Mutex whose value has been disposed.
	ErrReleased = errors.New("guard: handle already released")
)

// PoisonError reports that a previous holder panicked while holding the lock.
type PoisonError struct {
	// Value is what the holder panicked with.
	Value any
}

func (e *PoisonError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPoisoned, e.Value)
}

func (e *PoisonError) Unwrap() error {
	return ErrPoisoned
}

// Config holds the optional knobs of a SharedGuard.
type Config[T any] struct {
	// OnRelease disposes the value once the last owner is released.
	// When nil, values implementing io.Closer are closed instead.
	OnRelease func(T) error
	Adapters  struct {
		LoggerAdapter LoggerAdapter
	}
}
