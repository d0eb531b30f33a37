package leaktest

import (
	"testing"
	"time"
)

// recorder captures failures without failing the enclosing test
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		go time.Sleep(50 * time.Millisecond)
	})
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(1)
	close(done)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)
	go func() {
		<-done
	}()
	checker.Check(0)

	if !rec.failed {
		t.Error("expected the checker to report the blocked goroutine")
	}
}
