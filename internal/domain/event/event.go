package event

import (
	"context"
	"time"
)

// 事件路由键
const (
	BookCreated    = "book.created"
	BookUpdated    = "book.updated"
	AuthorCreated  = "author.created"
	AuthorUpdated  = "author.updated"
	OrderSubmitted = "order.submitted"
)

// Event 领域事件
// 写操作成功后发布,发布失败不影响写操作本身
type Event struct {
	Type       string    `json:"type"`
	EntityID   uint      `json:"entity_id"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New 创建事件
func New(eventType string, entityID uint, payload any) Event {
	return Event{
		Type:       eventType,
		EntityID:   entityID,
		Payload:    payload,
		OccurredAt: time.Now(),
	}
}

// Publisher 事件发布接口
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NopPublisher 未配置消息队列时使用
type NopPublisher struct{}

// Publish 丢弃事件
func (NopPublisher) Publish(context.Context, Event) error { return nil }
