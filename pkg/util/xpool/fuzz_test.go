package xpool

import (
	"testing"
)

func FuzzNew(f *testing.F) {
	f.Add(1, 1, 3)
	f.Add(0, 4, 10)
	f.Add(-1, 2, 0)
	f.Add(1000, 8, 50)

	f.Fuzz(func(t *testing.T, workers, hardware, tasks int) {
		hardware = hardware%16 + 1
		if hardware < 1 {
			hardware += 16
		}
		tasks = tasks % 64
		if tasks < 0 {
			tasks = -tasks
		}

		pool, err := New(workers, WithHardwareConcurrency(hardware))
		if err != nil {
			if workers >= 0 {
				t.Fatalf("New(%d) failed: %v", workers, err)
			}
			return
		}
		if pool.Workers() < 1 || pool.Workers() > hardware {
			t.Fatalf("workers = %d, hardware = %d", pool.Workers(), hardware)
		}

		futures := make([]*Future[int], 0, tasks)
		for i := range tasks {
			fut, err := SubmitValue(pool, func() int { return i })
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			futures = append(futures, fut)
		}
		if err := pool.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		for i, fut := range futures {
			if !fut.Ready() {
				t.Fatalf("future %d not ready after Close", i)
			}
			if v, _ := fut.Get(); v != i {
				t.Fatalf("future %d = %d", i, v)
			}
		}
	})
}
