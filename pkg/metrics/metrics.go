// Package metrics 基于Prometheus的指标收集
//
// 指标分为三组：
//   - HTTP请求：请求总数、耗时、处理中的请求数
//   - 生命周期钩子：按(服务, 阶段, 事件, 实体)统计的分发次数
//   - 业务：图书富化批次、存储查询、订单提交、事件发布、熔断器
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// 命名规范沿用Prometheus约定：Counter以_total结尾，Histogram以单位结尾。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，避免高基数）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// HookDispatchesTotal 钩子分发总数
	// 标签：service（admin/catalog）、event、target、result（success/failure）
	HookDispatchesTotal *prometheus.CounterVec

	// EnrichmentBatchesTotal 图书富化批次总数
	// 标签：result（success/failure）
	EnrichmentBatchesTotal *prometheus.CounterVec

	// EnrichmentBatchSize 每批富化的图书数量
	EnrichmentBatchSize prometheus.Histogram

	// EnrichmentDuration 单批富化耗时（秒）
	EnrichmentDuration prometheus.Histogram

	// StoreLookupsTotal 富化过程中的存储查询次数
	// 标签：store（stock/rating）、result（success/failure）
	StoreLookupsTotal *prometheus.CounterVec

	// OrderSubmissionsTotal submitOrder调用次数
	OrderSubmissionsTotal prometheus.Counter

	// EventsPublishedTotal 生命周期事件发布次数
	// 标签：routing_key、result（success/failure/dropped）
	EventsPublishedTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签：name、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry
// 可重复调用，只有第一次生效
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	HookDispatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hook_dispatches_total",
			Help: "生命周期钩子分发总数",
		},
		[]string{"service", "event", "target", "result"},
	)

	EnrichmentBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_enrichment_batches_total",
			Help: "图书富化批次总数",
		},
		[]string{"result"},
	)

	EnrichmentBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "book_enrichment_batch_size",
			Help:    "每批富化的图书数量",
			Buckets: []float64{1, 5, 10, 20, 50, 100},
		},
	)

	EnrichmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "book_enrichment_duration_seconds",
			Help: "单批图书富化耗时（秒）",
			// 每本书至少一次评分查询，批量越大越慢
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	StoreLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_enrichment_store_lookups_total",
			Help: "富化过程中的存储查询次数",
		},
		[]string{"store", "result"},
	)

	OrderSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_submissions_total",
			Help: "submitOrder调用总数",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifecycle_events_published_total",
			Help: "生命周期事件发布总数",
		},
		[]string{"routing_key", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)
}

// Result 将error转换为result标签值
func Result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// IncCounter 递增Counter
// 未调用InitMetrics时指标为nil,直接忽略
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels prometheus.Labels) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels prometheus.Labels, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram == nil {
		return
	}
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels prometheus.Labels, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
