package huffzip

import (
	"errors"
	"testing"
)

func TestPriorityQueue_AscendingWeight(t *testing.T) {
	pq := NewPriorityQueue(func(a, b int) bool { return a < b })
	for _, x := range []int{16, 5, 45, 12, 9, 13, 5} {
		pq.Add(x)
	}
	if pq.Len() != 7 {
		t.Fatalf("expected 7 elements, got %d", pq.Len())
	}
	if top, ok := pq.Peek(); !ok || top != 5 {
		t.Errorf("Peek: expected 5, got %d (ok=%v)", top, ok)
	}

	expect := []int{5, 5, 9, 12, 13, 16, 45}
	for i, want := range expect {
		got, err := pq.Remove()
		if err != nil {
			t.Fatalf("Remove %d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Remove %d: expected %d, got %d", i, want, got)
		}
	}

	if _, err := pq.Remove(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue, got %v", err)
	}
	if _, ok := pq.Peek(); ok {
		t.Errorf("Peek on empty queue returned ok")
	}
}

func TestPriorityQueue_TieBreak(t *testing.T) {
	type item struct {
		weight uint64
		seq    int
	}
	pq := NewPriorityQueue(func(a, b item) bool {
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		return a.seq < b.seq
	})
	for seq, w := range []uint64{3, 1, 3, 1, 3} {
		pq.Add(item{w, seq})
	}

	expect := []int{1, 3, 0, 2, 4}
	for i, want := range expect {
		got, err := pq.Remove()
		if err != nil {
			t.Fatalf("Remove %d failed: %v", i, err)
		}
		if got.seq != want {
			t.Errorf("Remove %d: expected seq %d, got %d", i, want, got.seq)
		}
	}
}
