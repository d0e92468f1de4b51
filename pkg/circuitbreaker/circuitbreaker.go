// Package circuitbreaker 熔断器
//
// 状态机：
//
//	CLOSED --连续失败达到阈值--> OPEN --冷却时间到--> HALF_OPEN
//	HALF_OPEN --探测成功--> CLOSED
//	HALF_OPEN --探测失败--> OPEN
//
// 本项目用于包裹生命周期事件的发布：消息代理不可用时快速失败，
// 避免每个请求都等待一次连接超时。
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrOpenState 熔断器打开，请求被拒绝
var ErrOpenState = errors.New("circuit breaker is open")

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Settings 熔断器配置
type Settings struct {
	// FailureThreshold 连续失败多少次后打开，<=0时取5
	FailureThreshold uint32

	// Cooldown OPEN状态持续时间，<=0时取30s
	Cooldown time.Duration

	// HalfOpenMax 半开状态允许同时进行的探测请求数，<=0时取1
	HalfOpenMax uint32

	// OnStateChange 状态变化回调(在锁外调用)
	OnStateChange func(name string, from, to State)

	// OnResult 每次调用结束的回调，result为success/failure/rejected
	OnResult func(name, result string)
}

// Breaker 熔断器
type Breaker struct {
	name     string
	settings Settings
	now      func() time.Time

	mu          sync.Mutex
	state       State
	failures    uint32    // CLOSED下的连续失败数
	inFlight    uint32    // HALF_OPEN下进行中的探测数
	openedUntil time.Time // OPEN状态的截止时间
}

// New 创建熔断器
func New(name string, settings Settings) *Breaker {
	if settings.FailureThreshold == 0 {
		settings.FailureThreshold = 5
	}
	if settings.Cooldown <= 0 {
		settings.Cooldown = 30 * time.Second
	}
	if settings.HalfOpenMax == 0 {
		settings.HalfOpenMax = 1
	}
	return &Breaker{name: name, settings: settings, now: time.Now}
}

// Name 熔断器名称
func (b *Breaker) Name() string {
	return b.name
}

// Execute 在熔断器保护下执行fn
// 熔断器打开时直接返回ErrOpenState，不调用fn
func (b *Breaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := b.acquire(); err != nil {
		b.report("rejected")
		return err
	}

	err := fn(ctx)
	b.release(err == nil)

	if err != nil {
		b.report("failure")
	} else {
		b.report("success")
	}
	return err
}

// State 当前状态(会推进OPEN→HALF_OPEN的超时转换)
func (b *Breaker) State() State {
	b.mu.Lock()
	state, change := b.advance()
	b.mu.Unlock()

	change()
	return state
}

func (b *Breaker) acquire() error {
	b.mu.Lock()
	state, change := b.advance()

	var err error
	switch state {
	case StateOpen:
		err = ErrOpenState
	case StateHalfOpen:
		if b.inFlight >= b.settings.HalfOpenMax {
			err = ErrOpenState
		} else {
			b.inFlight++
		}
	}
	b.mu.Unlock()

	change()
	return err
}

func (b *Breaker) release(success bool) {
	b.mu.Lock()
	var change func()
	switch b.state {
	case StateClosed:
		if success {
			b.failures = 0
			change = noop
		} else {
			b.failures++
			if b.failures >= b.settings.FailureThreshold {
				change = b.transition(StateOpen)
			} else {
				change = noop
			}
		}
	case StateHalfOpen:
		b.inFlight--
		if success {
			change = b.transition(StateClosed)
		} else {
			change = b.transition(StateOpen)
		}
	default:
		// 半开探测期间已被其他请求打开，结果不再计入
		change = noop
	}
	b.mu.Unlock()

	change()
}

// advance 处理OPEN冷却到期，调用方持有锁
func (b *Breaker) advance() (State, func()) {
	if b.state == StateOpen && !b.now().Before(b.openedUntil) {
		change := b.transition(StateHalfOpen)
		return b.state, change
	}
	return b.state, noop
}

// transition 切换状态，返回需要在锁外执行的回调
func (b *Breaker) transition(to State) func() {
	from := b.state
	if from == to {
		return noop
	}

	b.state = to
	b.failures = 0
	b.inFlight = 0
	if to == StateOpen {
		b.openedUntil = b.now().Add(b.settings.Cooldown)
	}

	if b.settings.OnStateChange == nil {
		return noop
	}
	name, cb := b.name, b.settings.OnStateChange
	return func() { cb(name, from, to) }
}

func (b *Breaker) report(result string) {
	if b.settings.OnResult != nil {
		b.settings.OnResult(b.name, result)
	}
}

func noop() {}
