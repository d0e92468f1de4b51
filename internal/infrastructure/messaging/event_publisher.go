package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xiebiao/bookshop/internal/domain/event"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// MessagePublisher 消息发布接口(*mq.Publisher满足此接口)
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// EventPublisher 生命周期事件发布者
// 设计说明:
// 1. RoutingKey即事件类型(book.created等)
// 2. 熔断器打开时直接丢弃,不等待连接超时
// 3. 每次发布单独设置超时
type EventPublisher struct {
	publisher MessagePublisher
	breaker   *circuitbreaker.Breaker
	timeout   time.Duration
}

// NewEventPublisher 创建事件发布者
func NewEventPublisher(publisher MessagePublisher, cfg config.MQConfig) *EventPublisher {
	breaker := circuitbreaker.New("mq", circuitbreaker.Settings{
		FailureThreshold: cfg.FailureThreshold,
		Cooldown:         cfg.Cooldown,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetGaugeVec(metrics.CircuitBreakerState, prometheus.Labels{"name": name}, float64(to))
		},
		OnResult: func(name, result string) {
			metrics.IncCounterVec(metrics.CircuitBreakerRequests, prometheus.Labels{"name": name, "result": result})
		},
	})
	return &EventPublisher{
		publisher: publisher,
		breaker:   breaker,
		timeout:   cfg.PublishTimeout,
	}
}

// Publish 发布事件
func (p *EventPublisher) Publish(ctx context.Context, e event.Event) error {
	err := p.breaker.Execute(ctx, func(ctx context.Context) error {
		if p.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.timeout)
			defer cancel()
		}
		return p.publisher.Publish(ctx, e.Type, e)
	})

	result := metrics.Result(err)
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		result = "dropped"
	}
	metrics.IncCounterVec(metrics.EventsPublishedTotal, prometheus.Labels{"routing_key": e.Type, "result": result})

	if err != nil {
		return apperrors.WrapAs(apperrors.ErrBrokerError, err)
	}
	return nil
}

// BreakerState 熔断器当前状态
func (p *EventPublisher) BreakerState() circuitbreaker.State {
	return p.breaker.State()
}
