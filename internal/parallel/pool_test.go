package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

func TestPool_QueueSizeBounded(t *testing.T) {
	tests := []struct {
		workers int
		want    int
	}{
		{1, 8},
		{4, 16},
		{16, maxQueueSize},
		{256, maxQueueSize},
	}
	for _, tt := range tests {
		pool := NewPool(tt.workers)
		for i, q := range pool.queues {
			if cap(q) != tt.want {
				t.Errorf("NewPool(%d) queue %d cap = %d, want %d", tt.workers, i, cap(q), tt.want)
				break
			}
		}
		pool.Close()
	}
}

// More jobs than queue slots still all run: Run blocks on full queues.
func TestPool_RunMoreJobsThanQueueSlots(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	const n = maxQueueSize * 10
	var count atomic.Int32
	jobs := make([]func(), n)
	for i := range jobs {
		jobs[i] = func() { count.Add(1) }
	}
	pool.Run(jobs)

	if got := count.Load(); got != n {
		t.Errorf("ran %d jobs, want %d", got, n)
	}
}

// =============================================================================
// Run Tests
// =============================================================================

func TestPool_Run(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}

	pool.Run(jobs)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestPool_RunEachJobOnce(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	const n = 257
	hits := make([]int32, n)
	jobs := make([]func(), n)
	for i := range jobs {
		jobs[i] = func() { atomic.AddInt32(&hits[i], 1) }
	}

	pool.Run(jobs)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("job %d ran %d times, want 1", i, h)
		}
	}
}

func TestPool_RunUnevenJobs(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var done atomic.Int32
	jobs := make([]func(), 16)
	for i := range jobs {
		jobs[i] = func() {
			if i%4 == 0 {
				time.Sleep(5 * time.Millisecond)
			}
			done.Add(1)
		}
	}

	pool.Run(jobs)

	if done.Load() != 16 {
		t.Errorf("done = %d, want 16", done.Load())
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	pool.Run(nil)
	pool.Run([]func(){})
}

func TestPool_RunConcurrentCallers(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs := make([]func(), 50)
			for i := range jobs {
				jobs[i] = func() { counter.Add(1) }
			}
			pool.Run(jobs)
		}()
	}
	wg.Wait()

	if counter.Load() != 400 {
		t.Errorf("counter = %d, want 400", counter.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestPool_Close(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	// Second close must not panic.
	pool.Close()
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	var ran atomic.Bool
	pool.Run([]func(){func() { ran.Store(true) }})

	if ran.Load() {
		t.Error("Run on closed pool executed a job")
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkPool_Run(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	jobs := make([]func(), 64)
	for i := range jobs {
		jobs[i] = func() {}
	}

	b.ReportAllocs()
	for b.Loop() {
		pool.Run(jobs)
	}
}
