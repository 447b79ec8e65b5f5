package renderer

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPartitionPixels_ExactCover(t *testing.T) {
	tests := []struct {
		name        string
		totalPixels int
		numWorkers  int
	}{
		{"single worker", 100, 1},
		{"even split", 100, 4},
		{"uneven split", 101, 7},
		{"more workers than pixels", 3, 16},
		{"prime sizes", 97 * 13, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partition := PartitionPixels(tt.totalPixels, tt.numWorkers)

			if len(partition) > tt.totalPixels {
				t.Errorf("Expected at most %d workers, got %d", tt.totalPixels, len(partition))
			}

			seen := make([]int, tt.totalPixels)
			for workerID, indices := range partition {
				for _, i := range indices {
					if i < 0 || i >= tt.totalPixels {
						t.Fatalf("worker %d owns out-of-range index %d", workerID, i)
					}
					if i%len(partition) != workerID {
						t.Errorf("worker %d owns index %d, not in its stride", workerID, i)
					}
					seen[i]++
				}
			}
			for i, count := range seen {
				if count != 1 {
					t.Fatalf("index %d owned %d times", i, count)
				}
			}
		})
	}
}

func TestNewWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(1<<20, 0)
	if pool.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), pool.GetNumWorkers())
	}
}

func TestWorkerPool_RunVisitsEveryPixelOnce(t *testing.T) {
	const total = 1000
	pool := NewWorkerPool(total, 8)

	var visits [total]atomic.Int32
	pool.Run(func(w *Worker, pixelIndex int) {
		visits[pixelIndex].Add(1)
	})

	for i := range visits {
		if visits[i].Load() != 1 {
			t.Fatalf("pixel %d visited %d times", i, visits[i].Load())
		}
	}
}
