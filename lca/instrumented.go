package lca

import (
	"context"
	"time"

	"github.com/wyfcoding/rangetree/logging"
	"github.com/wyfcoding/rangetree/metrics"
)

const structureLabel = "lca"

// Instrumented 为 LCA 查询附加指标采集与慢查询日志的装饰器。
type Instrumented struct {
	lca           *LCA
	metrics       *metrics.Metrics
	logger        *logging.Logger
	slowThreshold time.Duration
}

// NewInstrumented 包装现有 LCA 实例。
// slowThreshold 为慢查询日志阈值，非正值时使用默认的 100ms。
func NewInstrumented(l *LCA, m *metrics.Metrics, logger *logging.Logger, slowThreshold time.Duration) *Instrumented {
	if slowThreshold <= 0 {
		slowThreshold = 100 * time.Millisecond
	}
	m.StructureSize.WithLabelValues(structureLabel).Set(float64(l.Tour().NodeCount()))
	return &Instrumented{
		lca:           l,
		metrics:       m,
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

// LCA 返回底层查询结构。
func (it *Instrumented) LCA() *LCA {
	return it.lca
}

// Query 等价于 LCA.Query，附加耗时指标与慢查询日志。
func (it *Instrumented) Query(ctx context.Context, a, b int) (int, error) {
	start := time.Now()
	node, err := it.lca.Query(a, b)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
	}
	it.metrics.OpsTotal.WithLabelValues(structureLabel, "query", status).Inc()
	it.metrics.OpDuration.WithLabelValues(structureLabel, "query").Observe(elapsed.Seconds())

	if elapsed >= it.slowThreshold {
		it.logger.WarnContext(ctx, "slow lca query",
			"a", a,
			"b", b,
			"duration", elapsed,
			"nodes", it.lca.Tour().NodeCount(),
		)
	}
	return node, err
}
