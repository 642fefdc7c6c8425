package segtree

import (
	"context"
	"time"

	"github.com/wyfcoding/rangetree/logging"
	"github.com/wyfcoding/rangetree/metrics"
)

// structureLabel 上报指标时标识线段树的维度取值。
const structureLabel = "segment_tree"

// Instrumented 为线段树附加指标采集与慢操作日志的装饰器。
// 核心算法保持零依赖，观测能力通过组合挂载。
type Instrumented[T any] struct {
	tree          *SegmentTree[T]
	metrics       *metrics.Metrics
	logger        *logging.Logger
	slowThreshold time.Duration
}

// NewInstrumented 包装现有线段树。
// slowThreshold 为慢操作日志阈值，非正值时使用默认的 100ms。
func NewInstrumented[T any](tree *SegmentTree[T], m *metrics.Metrics, logger *logging.Logger, slowThreshold time.Duration) *Instrumented[T] {
	if slowThreshold <= 0 {
		slowThreshold = 100 * time.Millisecond
	}
	m.StructureSize.WithLabelValues(structureLabel).Set(float64(tree.Len()))
	return &Instrumented[T]{
		tree:          tree,
		metrics:       m,
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

// Tree 返回底层线段树，供不需要观测的调用路径直接使用。
func (it *Instrumented[T]) Tree() *SegmentTree[T] {
	return it.tree
}

// Fold 等价于 SegmentTree.Fold，附加耗时指标与慢查询日志。
func (it *Instrumented[T]) Fold(ctx context.Context, low, high int) (T, error) {
	start := time.Now()
	value, err := it.tree.Fold(low, high)
	it.observe(ctx, "fold", start, err)
	return value, err
}

// Update 等价于 SegmentTree.Update，附加耗时指标与慢查询日志。
func (it *Instrumented[T]) Update(ctx context.Context, index int, value T) error {
	start := time.Now()
	err := it.tree.Update(index, value)
	it.observe(ctx, "update", start, err)
	return err
}

// Len 返回底层序列的长度。
func (it *Instrumented[T]) Len() int {
	return it.tree.Len()
}

func (it *Instrumented[T]) observe(ctx context.Context, op string, start time.Time, err error) {
	elapsed := time.Since(start)
	status := "ok"
	if err != nil {
		status = "error"
	}
	it.metrics.OpsTotal.WithLabelValues(structureLabel, op, status).Inc()
	it.metrics.OpDuration.WithLabelValues(structureLabel, op).Observe(elapsed.Seconds())

	if elapsed >= it.slowThreshold {
		it.logger.WarnContext(ctx, "slow segment tree operation",
			"op", op,
			"duration", elapsed,
			"size", it.tree.Len(),
		)
	}
}
