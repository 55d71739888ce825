package guard

import (
	"testing"

	"github.com/pkg/errors"
)

func TestPoisonError_Error(t *testing.T) {
	err := &PoisonError{Value: "boom"}
	if err.Error() != "guard: mutex poisoned by a panicking holder: boom" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestPoisonError_Is(t *testing.T) {
	var err error = errors.Wrap(&PoisonError{Value: 1}, "lock indicator")
	if !errors.Is(err, ErrPoisoned) {
		t.Fatal("expected wrapped PoisonError to match ErrPoisoned")
	}
	if errors.Is(err, ErrWouldBlock) {
		t.Fatal("PoisonError must not match ErrWouldBlock")
	}
}
