// Package segtree 提供了支持任意结合律合并函数的泛型线段树.
// 线段树的每个节点代表原始序列的一个区间，根节点代表整个序列，叶子节点代表单个元素。
// 区间折叠 (Fold) 与单点更新 (Update) 的时间复杂度均为 O(log N)。
// 在实际应用中，例如库存管理（查询某个商品分类的总库存）、区间最值统计等场景中非常有用。
package segtree

import (
	"cmp"

	"github.com/wyfcoding/rangetree/xerrors"
)

// Combiner 区间合并函数原型。
// 必须满足结合律: combine(combine(a, b), c) == combine(a, combine(b, c))。
// 不要求交换律：子区间总是按从左到右的顺序合并。
type Combiner[T any] func(a, b T) T

// node 线段树节点。静态数组模拟动态节点，父子关系用数组下标表示。
type node[T any] struct {
	value     T   // 该区间上所有叶子值的合并结果；叶子节点为原始值。
	low, high int // 该节点代表的闭区间 [low, high]。
	mid       int // (low + high) / 2，向下取整。
	left      int // 左子节点下标，覆盖 [low, mid]；叶子节点为 -1。
	right     int // 右子节点下标，覆盖 [mid+1, high]；叶子节点为 -1。
}

// SegmentTree 泛型线段树。
// 构建后拓扑固定，仅 Update 会修改叶子值并沿路径重算祖先聚合值。
// 内部不加锁：对从未更新过的树并发只读查询是安全的；
// 并发更新或更新与查询并发时由调用方自行串行化。
type SegmentTree[T any] struct {
	nodes   []node[T]   // 所有节点，下标 0 为根。
	combine Combiner[T] // 调用方提供的结合律合并函数。
	n       int         // 原始序列长度。
}

// New 从原始序列构建线段树。
// values 为空时返回 xerrors.ErrEmptyData。
// combine 必须满足结合律，由调用方保证。
func New[T any](values []T, combine Combiner[T]) (*SegmentTree[T], error) {
	if len(values) == 0 {
		return nil, xerrors.ErrEmptyData
	}

	st := &SegmentTree[T]{
		// 完全二叉递归划分共 2N-1 个节点。
		nodes:   make([]node[T], 0, 2*len(values)-1),
		combine: combine,
		n:       len(values),
	}
	st.build(values, 0, len(values)-1)
	return st, nil
}

// build 递归构建 [low, high] 区间对应的子树，返回新节点下标。
func (st *SegmentTree[T]) build(values []T, low, high int) int {
	idx := len(st.nodes)
	st.nodes = append(st.nodes, node[T]{
		low:   low,
		high:  high,
		mid:   (low + high) / 2,
		left:  -1,
		right: -1,
	})

	if low == high {
		st.nodes[idx].value = values[low]
		return idx
	}

	mid := st.nodes[idx].mid
	left := st.build(values, low, mid)
	right := st.build(values, mid+1, high)
	st.nodes[idx].left = left
	st.nodes[idx].right = right
	st.nodes[idx].value = st.combine(st.nodes[left].value, st.nodes[right].value)
	return idx
}

// Len 返回原始序列的长度。
func (st *SegmentTree[T]) Len() int {
	return st.n
}

// Fold 返回合并函数从左到右作用于 [low, high] 上所有元素的结果。
// 区间越界或 low > high 时返回错误，树状态不变。
func (st *SegmentTree[T]) Fold(low, high int) (T, error) {
	var zero T
	if low > high {
		return zero, xerrors.ErrInvalidRange
	}
	if low < 0 || high >= st.n {
		return zero, xerrors.ErrIndexOutOfRange
	}
	return st.fold(0, low, high), nil
}

// fold 在下标为 idx 的节点中折叠 [low, high]。
// 调用方保证 [low, high] 落在该节点代表的区间内。
func (st *SegmentTree[T]) fold(idx, low, high int) T {
	nd := &st.nodes[idx]

	// 情况1: 目标区间与当前节点区间完全重合，直接返回缓存的聚合值。
	if low == nd.low && high == nd.high {
		return nd.value
	}

	// 情况2: 目标区间完全落在左子树或右子树。
	if high <= nd.mid {
		return st.fold(nd.left, low, high)
	}
	if low > nd.mid {
		return st.fold(nd.right, low, high)
	}

	// 情况3: 跨越中点，拆分后先左后右合并。
	leftPart := st.fold(nd.left, low, nd.mid)
	rightPart := st.fold(nd.right, nd.mid+1, high)
	return st.combine(leftPart, rightPart)
}

// Update 将 index 处的叶子值改为 value，并沿路径重算所有祖先的聚合值。
// 索引越界时返回 xerrors.ErrIndexOutOfRange，树状态不变。
func (st *SegmentTree[T]) Update(index int, value T) error {
	if index < 0 || index >= st.n {
		return xerrors.ErrIndexOutOfRange
	}
	st.update(0, index, value)
	return nil
}

// update 下降到 index 对应的叶子写入新值，回溯时重算当前节点的聚合值。
func (st *SegmentTree[T]) update(idx, index int, value T) {
	nd := &st.nodes[idx]
	if nd.low == nd.high {
		nd.value = value
		return
	}

	if index <= nd.mid {
		st.update(nd.left, index, value)
	} else {
		st.update(nd.right, index, value)
	}
	nd.value = st.combine(st.nodes[nd.left].value, st.nodes[nd.right].value)
}

// Min 返回 cmp.Ordered 类型的取小合并函数。相等时保留左侧参数。
func Min[T cmp.Ordered]() Combiner[T] {
	return func(a, b T) T {
		if b < a {
			return b
		}
		return a
	}
}

// Max 返回 cmp.Ordered 类型的取大合并函数。相等时保留左侧参数。
func Max[T cmp.Ordered]() Combiner[T] {
	return func(a, b T) T {
		if b > a {
			return b
		}
		return a
	}
}

// Numeric 可求和的数值类型约束。
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum 返回数值类型的求和合并函数。
func Sum[T Numeric]() Combiner[T] {
	return func(a, b T) T {
		return a + b
	}
}
