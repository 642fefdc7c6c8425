package segtree

import "cmp"

// RMQ (Range Minimum Query) 区间最小值查询结构。
// 它不是独立的算法，而是固定取小合并函数的线段树组合。
type RMQ[T any] struct {
	tree *SegmentTree[T]
}

// NewRMQ 为 cmp.Ordered 类型构建区间最小值查询结构。
func NewRMQ[T cmp.Ordered](values []T) (*RMQ[T], error) {
	return NewRMQFunc(values, func(a, b T) bool { return a < b })
}

// NewRMQFunc 用调用方提供的严格偏序构建 RMQ。
// less(a, b) 为真表示 a 排在 b 之前；两者等价时保留左侧参数，
// 因此相同序值的元素由区间内靠左者胜出。
func NewRMQFunc[T any](values []T, less func(a, b T) bool) (*RMQ[T], error) {
	tree, err := New(values, func(a, b T) T {
		if less(b, a) {
			return b
		}
		return a
	})
	if err != nil {
		return nil, err
	}
	return &RMQ[T]{tree: tree}, nil
}

// Min 返回 [low, high] 区间内的最小元素。
func (r *RMQ[T]) Min(low, high int) (T, error) {
	return r.tree.Fold(low, high)
}

// Update 更新 index 处的元素值。
func (r *RMQ[T]) Update(index int, value T) error {
	return r.tree.Update(index, value)
}

// Len 返回底层序列的长度。
func (r *RMQ[T]) Len() int {
	return r.tree.Len()
}
