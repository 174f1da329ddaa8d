package scoperef

import (
	"sync/atomic"
	"testing"
)

func TestWithScopeJoinsBeforeReturn(t *testing.T) {
	var done int32
	WithScope(func(sm *ScopeManager) {
		Par(sm, func() int {
			atomic.StoreInt32(&done, 1)
			return 42
		})
	})
	if atomic.LoadInt32(&done) != 1 {
		t.Fatal("WithScope returned before its par task completed")
	}
}

func TestParReturnsTaskResult(t *testing.T) {
	var got int
	WithScope(func(sm *ScopeManager) {
		fut := Par(sm, func() int { return 7 })
		got = fut.Get()
	})
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestSiblingTasksAllJoin(t *testing.T) {
	const n = 20
	var count int32
	WithScope(func(sm *ScopeManager) {
		for i := 0; i < n; i++ {
			Par(sm, func() int {
				atomic.AddInt32(&count, 1)
				return 0
			})
		}
	})
	if atomic.LoadInt32(&count) != n {
		t.Fatalf("count = %d, want %d", count, n)
	}
}

func TestDetachedParDoesNotBlockCaller(t *testing.T) {
	fut := DetachedPar(func() int { return 1 })
	if got := fut.Get(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestGetIsIdempotent(t *testing.T) {
	var fut *ArgonFuture[int]
	WithScope(func(sm *ScopeManager) {
		fut = Par(sm, func() int { return 5 })
	})
	if fut.Get() != 5 || fut.Get() != 5 {
		t.Fatal("Get should be safely callable more than once")
	}
}
