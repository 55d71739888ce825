package guard

import (
	"sync"
	"testing"
)

func increment(m *Mutex[int]) error {
	return m.RunAtomic(func(v *int) error {
		*v++
		return nil
	})
}

// Baseline: the bare mutex the guard replaces
func BenchmarkBareMutex(b *testing.B) {
	var mu sync.Mutex
	value := 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mu.Lock()
		value++
		mu.Unlock()
	}
}

func BenchmarkMutexLock(b *testing.B) {
	m := NewMutex(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := m.Lock()
		*g.Value()++
		g.Unlock()
	}
}

func BenchmarkExecute(b *testing.B) {
	g := New(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Execute(g, increment)
	}
}

func BenchmarkExecuteParallel(b *testing.B) {
	g := New(0)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		handle := g.Clone()
		defer handle.Release()
		for pb.Next() {
			_ = handle.Run(increment)
		}
	})
}

func BenchmarkCloneRelease(b *testing.B) {
	g := New(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone().Release()
	}
}
