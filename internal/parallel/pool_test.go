package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

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
			t.Errorf("NewPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

func TestPool_Run(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	var count atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}

	pool.Run(work)

	if got := count.Load(); got != 100 {
		t.Errorf("ran %d items, want 100", got)
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()
	pool.Run(nil)
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	var count int
	pool.Run([]func(){func() { count++ }, func() { count++ }})
	if count != 2 {
		t.Errorf("ran %d items after Close, want 2 inline", count)
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("IsRunning() after Close = true")
	}
}

func TestPool_Rows(t *testing.T) {
	tests := []struct {
		name     string
		n, bands int
		maxCalls int
	}{
		{"even", 100, 4, 4},
		{"uneven", 37, 4, 4},
		{"more bands than rows", 3, 8, 3},
		{"single band", 10, 1, 1},
		{"default bands", 50, 0, 4},
		{"one row", 1, 4, 1},
	}

	pool := NewPool(4)
	defer pool.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]atomic.Int32, tt.n)
			var calls atomic.Int32

			pool.Rows(tt.n, tt.bands, func(y0, y1 int) {
				calls.Add(1)
				if y0 >= y1 {
					t.Errorf("empty band [%d, %d)", y0, y1)
				}
				for y := y0; y < y1; y++ {
					hits[y].Add(1)
				}
			})

			for y := range hits {
				if h := hits[y].Load(); h != 1 {
					t.Errorf("row %d visited %d times, want 1", y, h)
				}
			}
			if c := int(calls.Load()); c < 1 || c > tt.maxCalls {
				t.Errorf("%d bands, want 1..%d", c, tt.maxCalls)
			}
		})
	}
}

func TestPool_RowsZero(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	pool.Rows(0, 4, func(int, int) { t.Error("fn called for n=0") })
}

func TestPool_ConcurrentRun(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Rows(64, 4, func(y0, y1 int) {
				total.Add(int64(y1 - y0))
			})
		}()
	}
	wg.Wait()

	if got := total.Load(); got != 8*64 {
		t.Errorf("total rows = %d, want %d", got, 8*64)
	}
}

func BenchmarkPool_Rows(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	for i := 0; i < b.N; i++ {
		pool.Rows(1024, 0, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				_ = y * y
			}
		})
	}
}
