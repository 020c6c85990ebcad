package sched

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolCreate(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
	if !p.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestPoolCreateZeroWorkersUsesGOMAXPROCS(t *testing.T) {
	p := NewPool(0)
	defer p.Close()

	want := runtime.GOMAXPROCS(0)
	if p.Workers() != want {
		t.Errorf("Workers() = %d, want %d", p.Workers(), want)
	}
}

func TestPoolExecuteAllRunsEveryItem(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	p.ExecuteAll(work)

	if got := counter.Load(); got != 100 {
		t.Fatalf("expected 100 executions, got %d", got)
	}
}

func TestPoolSubmitRunsAsynchronously(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	done := make(chan struct{})
	p.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("submitted work never ran")
	}
}

func TestPoolCloseIsIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close() // must not panic or block

	if p.IsRunning() {
		t.Fatal("pool should report not running after Close")
	}
}

func TestPoolExecuteAllNoOpAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()

	var ran atomic.Bool
	p.ExecuteAll([]func(){func() { ran.Store(true) }})

	if ran.Load() {
		t.Fatal("ExecuteAll should be a no-op on a closed pool")
	}
}
