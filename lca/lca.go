package lca

import (
	"github.com/wyfcoding/rangetree/segtree"
	"github.com/wyfcoding/rangetree/xerrors"
)

// LCA 最近公共祖先查询结构。
// 构建时将树展开为欧拉序，并在其上建立按深度取小的 RMQ；
// 两个节点首次出现位置之间深度最小的记录即为它们的 LCA。
// 预处理复杂度 O(N)，单次查询复杂度 O(log N)。
// 构建完成后拓扑不可变，并发只读查询是安全的。
type LCA struct {
	tour *EulerTour
	rmq  *segtree.RMQ[TourEntry]
}

// New 从 root 与子节点邻接表构建 LCA 查询结构。
// 输入不构成以 root 为根的树时返回 xerrors.ErrInvalidTree。
func New(root int, neighbors [][]int) (*LCA, error) {
	tour, err := NewEulerTour(root, neighbors)
	if err != nil {
		return nil, err
	}

	// 深度相同的记录由区间内靠左者胜出，
	// 对结果没有影响：LCA 的正确性只由深度决定。
	rmq, err := segtree.NewRMQFunc(tour.Entries(), func(a, b TourEntry) bool {
		return a.Depth < b.Depth
	})
	if err != nil {
		return nil, err
	}

	return &LCA{tour: tour, rmq: rmq}, nil
}

// Query 返回 a 与 b 的最近公共祖先。
// 任一节点不属于构建时的树则返回 xerrors.ErrNodeNotFound。
// Query(a, a) == a，且 Query(a, b) == Query(b, a)。
func (l *LCA) Query(a, b int) (int, error) {
	i, ok := l.tour.FirstIndex(a)
	if !ok {
		return 0, xerrors.ErrNodeNotFound
	}
	j, ok := l.tour.FirstIndex(b)
	if !ok {
		return 0, xerrors.ErrNodeNotFound
	}

	if i > j {
		i, j = j, i
	}
	entry, err := l.rmq.Min(i, j)
	if err != nil {
		return 0, err
	}
	return entry.Node, nil
}

// Depth 返回节点的深度，根为 0。
func (l *LCA) Depth(node int) (int, error) {
	i, ok := l.tour.FirstIndex(node)
	if !ok {
		return 0, xerrors.ErrNodeNotFound
	}
	return l.tour.Entries()[i].Depth, nil
}

// Distance 返回两个节点之间的路径边数。
func (l *LCA) Distance(a, b int) (int, error) {
	ancestor, err := l.Query(a, b)
	if err != nil {
		return 0, err
	}
	da, err := l.Depth(a)
	if err != nil {
		return 0, err
	}
	db, err := l.Depth(b)
	if err != nil {
		return 0, err
	}
	dw, err := l.Depth(ancestor)
	if err != nil {
		return 0, err
	}
	return da + db - 2*dw, nil
}

// Tour 返回底层欧拉序，供调用方组合自己的区间查询。
func (l *LCA) Tour() *EulerTour {
	return l.tour
}
