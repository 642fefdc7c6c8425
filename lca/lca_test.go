package lca

import (
	"errors"
	"testing"

	"github.com/wyfcoding/rangetree/xerrors"
)

func TestQueryKnownScenario(t *testing.T) {
	root, neighbors := demoTree()
	l, err := New(root, neighbors)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	cases := []struct {
		a, b, want int
	}{
		{3, 4, 2},
		{3, 5, 1},
		{2, 3, 2},
		{4, 4, 4},
		{5, 3, 1},
	}
	for _, tc := range cases {
		got, err := l.Query(tc.a, tc.b)
		if err != nil {
			t.Fatalf("Query(%d, %d) failed: %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Errorf("Query(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestQuerySymmetryAndSelf(t *testing.T) {
	root, neighbors := demoTree()
	l, err := New(root, neighbors)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	nodes := []int{1, 2, 3, 4, 5}
	for _, a := range nodes {
		self, err := l.Query(a, a)
		if err != nil {
			t.Fatalf("Query(%d, %d) failed: %v", a, a, err)
		}
		if self != a {
			t.Errorf("Query(%d, %d) = %d, want %d", a, a, self, a)
		}

		for _, b := range nodes {
			ab, err := l.Query(a, b)
			if err != nil {
				t.Fatalf("Query(%d, %d) failed: %v", a, b, err)
			}
			ba, err := l.Query(b, a)
			if err != nil {
				t.Fatalf("Query(%d, %d) failed: %v", b, a, err)
			}
			if ab != ba {
				t.Errorf("Query(%d, %d) = %d but Query(%d, %d) = %d", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestQueryUnknownNode(t *testing.T) {
	root, neighbors := demoTree()
	l, err := New(root, neighbors)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// 0 号槽位从未加入树中。
	if _, err := l.Query(0, 3); !errors.Is(err, xerrors.ErrNodeNotFound) {
		t.Errorf("Query(0, 3) err = %v, want ErrNodeNotFound", err)
	}
	if _, err := l.Query(3, 0); !errors.Is(err, xerrors.ErrNodeNotFound) {
		t.Errorf("Query(3, 0) err = %v, want ErrNodeNotFound", err)
	}
	if _, err := l.Query(-1, 3); !errors.Is(err, xerrors.ErrNodeNotFound) {
		t.Errorf("Query(-1, 3) err = %v, want ErrNodeNotFound", err)
	}
}

func TestDepthAndDistance(t *testing.T) {
	root, neighbors := demoTree()
	l, err := New(root, neighbors)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	depths := map[int]int{1: 0, 2: 1, 5: 1, 3: 2, 4: 2}
	for node, want := range depths {
		got, err := l.Depth(node)
		if err != nil {
			t.Fatalf("Depth(%d) failed: %v", node, err)
		}
		if got != want {
			t.Errorf("Depth(%d) = %d, want %d", node, got, want)
		}
	}

	distances := []struct {
		a, b, want int
	}{
		{3, 4, 2}, // 3 -> 2 -> 4
		{3, 5, 3}, // 3 -> 2 -> 1 -> 5
		{1, 4, 2}, // 1 -> 2 -> 4
		{4, 4, 0},
	}
	for _, tc := range distances {
		got, err := l.Distance(tc.a, tc.b)
		if err != nil {
			t.Fatalf("Distance(%d, %d) failed: %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Errorf("Distance(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDeepChain(t *testing.T) {
	// 深链树用于验证显式栈的遍历不受递归深度限制。
	const n = 10000
	neighbors := make([][]int, n)
	for i := 0; i < n-1; i++ {
		neighbors[i] = []int{i + 1}
	}

	l, err := New(0, neighbors)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	got, err := l.Query(n-1, n/2)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if got != n/2 {
		t.Errorf("Query(%d, %d) = %d, want %d (ancestor on a chain is the shallower node)",
			n-1, n/2, got, n/2)
	}

	d, err := l.Distance(0, n-1)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if d != n-1 {
		t.Errorf("Distance(0, %d) = %d, want %d", n-1, d, n-1)
	}
}

func TestStarTree(t *testing.T) {
	// 星形树：所有叶子的 LCA 都是根。
	const n = 64
	neighbors := make([][]int, n)
	for i := 1; i < n; i++ {
		neighbors[0] = append(neighbors[0], i)
	}

	l, err := New(0, neighbors)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	for a := 1; a < n; a++ {
		for b := a + 1; b < n; b++ {
			got, err := l.Query(a, b)
			if err != nil {
				t.Fatalf("Query(%d, %d) failed: %v", a, b, err)
			}
			if got != 0 {
				t.Errorf("Query(%d, %d) = %d, want root 0", a, b, got)
			}
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	const n = 1 << 14
	neighbors := make([][]int, n)
	// 完全二叉树。
	for i := 0; i < n; i++ {
		if 2*i+1 < n {
			neighbors[i] = append(neighbors[i], 2*i+1)
		}
		if 2*i+2 < n {
			neighbors[i] = append(neighbors[i], 2*i+2)
		}
	}
	l, err := New(0, neighbors)
	if err != nil {
		b.Fatalf("build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Query(i%n, (i*7+3)%n); err != nil {
			b.Fatal(err)
		}
	}
}
