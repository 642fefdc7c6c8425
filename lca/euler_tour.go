// Package lca 提供了基于欧拉序与区间最小值查询 (RMQ) 的最近公共祖先查询.
// 树在构建时被深度优先遍历展开为 (深度, 节点) 序列，
// 两个节点的 LCA 即其首次出现位置之间深度最小的那条记录。
package lca

import (
	"github.com/wyfcoding/rangetree/xerrors"
)

// TourEntry 欧拉序中的一条记录。
type TourEntry struct {
	Depth int // 节点在树中的深度，根为 0。
	Node  int // 节点编号。
}

// EulerTour 树的欧拉序展开结果。
// 遍历进入节点时记录一次，每次从子节点返回后再记录一次父节点，
// 共 2V-1 条记录 (V 为可达节点数)。构建完成后不再修改。
type EulerTour struct {
	entries []TourEntry
	first   []int // 节点编号 -> 首次出现的下标；未出现为 -1。
	visited int   // 从根可达的节点数。
}

// dfsFrame 显式栈帧，child 为下一个待进入的子节点游标。
// 使用显式栈而非递归，避免深链树导致栈溢出。
type dfsFrame struct {
	node  int
	child int
}

// NewEulerTour 从 root 出发深度优先遍历 neighbors 描述的有根树，构建欧拉序。
// neighbors[i] 为节点 i 的子节点列表，子节点顺序由调用方决定。
// 发现环、重复父节点、越界子节点编号，或存在声明了子节点却不可达的节点时，
// 返回 xerrors.ErrInvalidTree。仅作为空闲占位的编号 (无子节点且未被引用) 是允许的。
func NewEulerTour(root int, neighbors [][]int) (*EulerTour, error) {
	n := len(neighbors)
	if n == 0 || root < 0 || root >= n {
		return nil, xerrors.ErrInvalidTree
	}

	t := &EulerTour{
		entries: make([]TourEntry, 0, 2*n-1),
		first:   make([]int, n),
	}
	for i := range t.first {
		t.first[i] = -1
	}

	seen := make([]bool, n)
	seen[root] = true
	t.first[root] = 0
	t.entries = append(t.entries, TourEntry{Depth: 0, Node: root})

	stack := make([]dfsFrame, 0, n)
	stack = append(stack, dfsFrame{node: root})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := neighbors[top.node]

		if top.child < len(children) {
			c := children[top.child]
			top.child++

			if c < 0 || c >= n {
				return nil, xerrors.ErrInvalidTree
			}
			// 节点被二次进入意味着存在环或多个父节点。
			if seen[c] {
				return nil, xerrors.ErrInvalidTree
			}
			seen[c] = true
			t.first[c] = len(t.entries)
			t.entries = append(t.entries, TourEntry{Depth: len(stack), Node: c})
			stack = append(stack, dfsFrame{node: c})
			continue
		}

		// 该节点的所有子树均已展开，回溯并补记父节点。
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			t.entries = append(t.entries, TourEntry{Depth: len(stack) - 1, Node: parent})
		}
	}

	// 声明了子节点却从根不可达的节点说明输入不是一棵树。
	for i := range neighbors {
		if !seen[i] && len(neighbors[i]) > 0 {
			return nil, xerrors.ErrInvalidTree
		}
	}

	for _, ok := range seen {
		if ok {
			t.visited++
		}
	}
	return t, nil
}

// Entries 返回欧拉序记录。返回值为内部切片，调用方不应修改。
func (t *EulerTour) Entries() []TourEntry {
	return t.entries
}

// FirstIndex 返回节点在欧拉序中首次出现的下标。
// 节点未出现在树中时第二个返回值为 false。
func (t *EulerTour) FirstIndex(node int) (int, bool) {
	if node < 0 || node >= len(t.first) || t.first[node] < 0 {
		return 0, false
	}
	return t.first[node], true
}

// Len 返回欧拉序的记录条数 (2V-1)。
func (t *EulerTour) Len() int {
	return len(t.entries)
}

// NodeCount 返回从根可达的节点数。
func (t *EulerTour) NodeCount() int {
	return t.visited
}
