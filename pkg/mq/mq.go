// Package mq RabbitMQ消息发布
//
// 设计说明：
// 1. 使用Topic Exchange，RoutingKey形如 book.created、order.submitted
// 2. 消息体为JSON(json-iterator编码)，持久化投递
// 3. 每条消息带MessageID(UUID)与时间戳，便于消费端去重
package mq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Channel 发布所需的AMQP Channel子集(*amqp.Channel满足此接口)
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher 消息发布者
type Publisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	appID    string
}

// Dial 连接RabbitMQ并声明Exchange
func Dial(url, exchange, exchangeType, appID string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	// Durable=true, AutoDelete=false, Internal=false, NoWait=false
	if err := channel.ExchangeDeclare(exchange, exchangeType, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("声明Exchange失败: %w", err)
	}

	p := NewPublisher(channel, exchange, appID)
	p.conn = conn
	return p, nil
}

// NewPublisher 基于已有Channel创建发布者
func NewPublisher(channel Channel, exchange, appID string) *Publisher {
	return &Publisher{
		channel:  channel,
		exchange: exchange,
		appID:    appID,
	}
}

// Publish 发布一条JSON消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			AppId:        p.appID,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	return nil
}

// Close 关闭Channel与连接
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
