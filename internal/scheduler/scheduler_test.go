package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CraftPanel_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

type countingPool struct{ n int }

func (c *countingPool) Enqueue(job worker.Job) bool {
	c.n++
	return true
}

func TestScheduler_DisabledInterval(t *testing.T) {
	pool := &countingPool{}
	sched := New(pool)
	sched.Schedule(0, &MockJob{Done: make(chan struct{}, 1)})
	time.Sleep(20 * time.Millisecond)
	sched.Stop()
	sched.Stop()

	assert.Zero(t, pool.n)
}
