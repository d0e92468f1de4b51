package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/event"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

type sent struct {
	key     string
	message interface{}
}

// fakePublisher 记录发布的消息
type fakePublisher struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	f.sent = append(f.sent, sent{key: routingKey, message: message})
	return nil
}

func testConfig() config.MQConfig {
	return config.MQConfig{PublishTimeout: time.Second, FailureThreshold: 2, Cooldown: time.Minute}
}

func TestEventPublisher_Publish(t *testing.T) {
	fake := &fakePublisher{}
	p := NewEventPublisher(fake, testConfig())

	e := event.New(event.BookCreated, 201, map[string]any{"title": "Wuthering Heights"})
	require.NoError(t, p.Publish(context.Background(), e))

	require.Len(t, fake.sent, 1)
	assert.Equal(t, "book.created", fake.sent[0].key)
	assert.Equal(t, e, fake.sent[0].message)
}

func TestEventPublisher_BreakerOpensAfterFailures(t *testing.T) {
	fake := &fakePublisher{err: errors.New("connection refused")}
	p := NewEventPublisher(fake, testConfig())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := p.Publish(ctx, event.New(event.OrderSubmitted, 1, nil))
		assert.ErrorIs(t, err, apperrors.ErrBrokerError)
	}
	assert.Equal(t, circuitbreaker.StateOpen, p.BreakerState())

	// 打开后直接丢弃
	fake.err = nil
	err := p.Publish(ctx, event.New(event.OrderSubmitted, 1, nil))
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Empty(t, fake.sent)
}
