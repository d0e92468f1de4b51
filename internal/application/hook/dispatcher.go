package hook

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// ErrUnhandled 事件既没有on处理函数也没有fallback
var ErrUnhandled = apperrors.New(apperrors.ErrCodeRouteNotFound, "事件没有注册处理函数")

const tracerName = "hook"

// Dispatcher 按分发表执行钩子
type Dispatcher struct {
	service string
	table   Table
	logger  *slog.Logger
}

// NewDispatcher 创建分发器
// service用于日志和指标标签(admin/catalog)
func NewDispatcher(service string, table Table, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		service: service,
		table:   table,
		logger:  logger.With("service", service),
	}
}

// Dispatch 执行一次请求的before/on/after处理函数
// fallback为通用持久化操作,注册了on处理函数时不执行
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request, fallback Handler) (result any, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "hook.Dispatch")
	span.SetAttributes(
		attribute.String("hook.service", d.service),
		attribute.String("hook.event", string(req.Event)),
		attribute.String("hook.target", string(req.Target)),
	)
	defer func() {
		tracing.EndSpan(span, err)
		metrics.IncCounterVec(metrics.HookDispatchesTotal, prometheus.Labels{
			"service": d.service,
			"event":   string(req.Event),
			"target":  string(req.Target),
			"result":  metrics.Result(err),
		})
	}()

	// 1. before
	for _, h := range d.table.Lookup(Before, req.Target, req.Event) {
		if err := h(ctx, req); err != nil {
			d.logger.WarnContext(ctx, "before handler rejected request",
				"event", req.Event, "target", req.Target, "error", err)
			return nil, err
		}
	}

	// 2. on
	handlers := d.table.Lookup(On, req.Target, req.Event)
	if len(handlers) == 0 {
		if fallback == nil {
			return nil, ErrUnhandled
		}
		handlers = []Handler{fallback}
	}
	for _, h := range handlers {
		if err := h(ctx, req); err != nil {
			return nil, err
		}
	}

	// 3. after
	for _, h := range d.table.Lookup(After, req.Target, req.Event) {
		if err := h(ctx, req); err != nil {
			d.logger.ErrorContext(ctx, "after handler failed",
				"event", req.Event, "target", req.Target, "error", err)
			return nil, err
		}
	}

	return req.Result, nil
}
