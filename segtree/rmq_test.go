package segtree

import (
	"testing"
)

func TestRMQMinimality(t *testing.T) {
	// 演示数据: (3i + 2) % 10。
	values := make([]int, 10)
	for i := range values {
		values[i] = (3*i + 2) % 10
	}

	rmq, err := NewRMQ(values)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if rmq.Len() != len(values) {
		t.Errorf("Len() = %d, want %d", rmq.Len(), len(values))
	}

	for low := 0; low < len(values); low++ {
		for high := low; high < len(values); high++ {
			got, err := rmq.Min(low, high)
			if err != nil {
				t.Fatalf("Min(%d, %d) failed: %v", low, high, err)
			}
			for _, v := range values[low : high+1] {
				if got > v {
					t.Errorf("Min(%d, %d) = %d, but range contains %d", low, high, got, v)
				}
			}
			found := false
			for _, v := range values[low : high+1] {
				if v == got {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Min(%d, %d) = %d, not an element of the range", low, high, got)
			}
		}
	}
}

func TestRMQUpdate(t *testing.T) {
	rmq, err := NewRMQ([]int{5, 3, 8, 6, 2})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	got, err := rmq.Min(0, 3)
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if got != 3 {
		t.Errorf("Min(0, 3) = %d, want 3", got)
	}

	if err := rmq.Update(1, 9); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err = rmq.Min(0, 3)
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if got != 5 {
		t.Errorf("after Update(1, 9): Min(0, 3) = %d, want 5", got)
	}
}

func TestRMQFuncTieBreaksLeft(t *testing.T) {
	type entry struct {
		key int
		pos int
	}
	values := []entry{{1, 0}, {0, 1}, {0, 2}, {1, 3}, {0, 4}}

	rmq, err := NewRMQFunc(values, func(a, b entry) bool { return a.key < b.key })
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// 等值记录由区间内靠左者胜出。
	got, err := rmq.Min(0, 4)
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if got.pos != 1 {
		t.Errorf("Min(0, 4) returned pos %d, want leftmost minimum at pos 1", got.pos)
	}

	got, err = rmq.Min(2, 4)
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if got.pos != 2 {
		t.Errorf("Min(2, 4) returned pos %d, want leftmost minimum at pos 2", got.pos)
	}
}
