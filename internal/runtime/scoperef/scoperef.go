// Package scoperef is a Go-executable reference model of the concurrency
// contract the emitter's runtime templates describe in text form (spec
// §4.5/§5): ScopeGuard/ScopeManager/ArgonFuture/par. It is never emitted —
// nothing in internal/emitter imports it — it exists purely so tests can
// pin down the happens-before/ordering guarantees ("within a single scope,
// all par tasks happen-before the scope's exit; no ordering between
// siblings") in a runnable Go program instead of only in C++ template
// prose, per SPEC_FULL §4.5+.
package scoperef

import (
	"sync"

	"github.com/sourcegraph/conc"
)

// ArgonFuture is a move-only (by convention — callers should not copy a
// used Future) handle to a task launched by Par. Get blocks until the
// task's result is ready; it may be called more than once, unlike the
// emitted C++ future's single-shot .get().
type ArgonFuture[T any] struct {
	result chan T
	once   sync.Once
	cached T
}

// Get blocks for the task's result (spec §5 "future.get() (blocking
// await)").
func (f *ArgonFuture[T]) Get() T {
	f.once.Do(func() {
		f.cached = <-f.result
	})
	return f.cached
}

// ScopeManager registers futures spawned inside one lexical scope and
// waits for every one of them on Close, mirroring the emitted
// ScopeManager's destructor-time join (spec §4.5, §5).
type ScopeManager struct {
	wg conc.WaitGroup
}

// ScopeGuard pushes a new ScopeManager for the duration of the function
// passed to WithScope; Par calls registered inside the function attach to
// it. WithScope returns only after every task spawned inside it has
// completed — the Go analogue of the emitted ScopeGuard destructor running
// its awaits (spec §9 "model ScopeGuard as a scoped-resource construct
// with a deterministic release step").
func WithScope(f func(*ScopeManager)) {
	sm := &ScopeManager{}
	defer sm.wg.Wait()
	f(sm)
}

// Par launches task asynchronously under sm and returns an ArgonFuture for
// its result — the reference-model analogue of the emitted `par(...)`
// call (spec §4.4 "par expr").
func Par[T any](sm *ScopeManager, task func() T) *ArgonFuture[T] {
	fut := &ArgonFuture[T]{result: make(chan T, 1)}
	sm.wg.Go(func() {
		fut.result <- task()
	})
	return fut
}

// DetachedPar runs task on its own goroutine, outside any ScopeManager —
// the "par outside any guard is still valid but is detached" case (spec
// §4.4).
func DetachedPar[T any](task func() T) *ArgonFuture[T] {
	fut := &ArgonFuture[T]{result: make(chan T, 1)}
	go func() { fut.result <- task() }()
	return fut
}
