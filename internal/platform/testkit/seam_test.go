package testkit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var (
	docSeam   = func() string { return "real" }
	threshold = 0.7
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		prev := Swap(t, &docSeam, func() string { return "{broken" })
		if prev() != "real" {
			t.Fatalf("Swap returned %q, want the replaced value", prev())
		}
		if got := docSeam(); got != "{broken" {
			t.Fatalf("docSeam = %q after swap", got)
		}

		if p := Swap(t, &threshold, 0.95); p != 0.7 {
			t.Fatalf("prev threshold = %v", p)
		}
		// nested swaps unwind in reverse order
		Swap(t, &threshold, 0.1)
		if threshold != 0.1 {
			t.Fatalf("threshold = %v", threshold)
		}
	})

	if got := docSeam(); got != "real" {
		t.Fatalf("docSeam not restored: %q", got)
	}
	if threshold != 0.7 {
		t.Fatalf("threshold not restored: %v", threshold)
	}
}

// exclusive runs n parallel subtests under lock and reports the peak concurrency
func exclusive(t *testing.T, n int, lock func(t *testing.T, i int)) int32 {
	var active, peak atomic.Int32
	t.Run("group", func(t *testing.T) {
		for i := 0; i < n; i++ {
			i := i
			t.Run("", func(t *testing.T) {
				t.Parallel()
				lock(t, i)
				cur := active.Add(1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				active.Add(-1)
			})
		}
	})
	return peak.Load()
}

func TestSerial_Excludes(t *testing.T) {
	peak := exclusive(t, 4, func(t *testing.T, _ int) { Serial(t) })
	if peak != 1 {
		t.Fatalf("peak concurrency under Serial = %d, want 1", peak)
	}
}

func TestSerialOn_IndependentSeams(t *testing.T) {
	names := []string{"doc-reader", "mutators"}
	var start sync.WaitGroup
	start.Add(len(names))

	peak := exclusive(t, len(names), func(t *testing.T, i int) {
		SerialOn(t, names[i])
		// both holders are inside their locks at once
		start.Done()
		start.Wait()
	})
	if peak != int32(len(names)) {
		t.Fatalf("peak = %d, distinct seams should not block each other", peak)
	}

	same := exclusive(t, 3, func(t *testing.T, _ int) { SerialOn(t, "doc-reader") })
	if same != 1 {
		t.Fatalf("peak on one seam = %d, want 1", same)
	}
}
