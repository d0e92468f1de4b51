package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestInitMetrics 重复初始化不会panic（重复注册会panic）
func TestInitMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		InitMetrics()
		InitMetrics()
	})

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HookDispatchesTotal)
	assert.NotNil(t, EnrichmentDuration)
	assert.NotNil(t, CircuitBreakerState)
}

func TestIncCounterVec(t *testing.T) {
	InitMetrics()

	labels := prometheus.Labels{"store": "rating", "result": "success"}
	before := testutil.ToFloat64(StoreLookupsTotal.With(labels))

	IncCounterVec(StoreLookupsTotal, labels)
	IncCounterVec(StoreLookupsTotal, labels)
	IncCounterVec(StoreLookupsTotal, prometheus.Labels{"store": "stock", "result": "success"})

	assert.Equal(t, before+2, testutil.ToFloat64(StoreLookupsTotal.With(labels)))
}

func TestIncCounter(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(OrderSubmissionsTotal)
	IncCounter(OrderSubmissionsTotal)

	assert.Equal(t, before+1, testutil.ToFloat64(OrderSubmissionsTotal))
}

func TestSetGaugeVec(t *testing.T) {
	InitMetrics()

	labels := prometheus.Labels{"name": "test-breaker"}
	SetGaugeVec(CircuitBreakerState, labels, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.With(labels)))

	SetGaugeVec(CircuitBreakerState, labels, 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.With(labels)))
}

func TestObserveHistogram(t *testing.T) {
	InitMetrics()

	ObserveHistogram(EnrichmentBatchSize, 3)
	ObserveHistogramVec(HTTPRequestDuration, prometheus.Labels{"method": "GET", "path": "/api/v1/admin/books"}, 0.02)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(EnrichmentBatchSize), 1)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}

func TestResult(t *testing.T) {
	assert.Equal(t, "success", Result(nil))
	assert.Equal(t, "failure", Result(errors.New("x")))
}
