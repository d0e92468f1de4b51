// Package hook 生命周期钩子分发
//
// 每个服务在启动时构建一张不可变的分发表:
//
//	(阶段, 实体, 事件) → 处理函数列表
//
// 一次请求的执行顺序:
//  1. before 处理函数依次执行,任一返回错误即中止
//  2. on 处理函数依次执行;没有注册时执行fallback(通用持久化操作)
//  3. after 处理函数依次执行,可以替换 req.Result
package hook

import (
	"context"
)

// Phase 生命周期阶段
type Phase string

const (
	Before Phase = "before"
	On     Phase = "on"
	After  Phase = "after"
)

// Event 事件(通用操作或自定义动作)
type Event string

const (
	Create      Event = "CREATE"
	Update      Event = "UPDATE"
	Read        Event = "READ"
	CreateBook  Event = "createBook"
	SubmitOrder Event = "submitOrder"
)

// Target 事件所属实体,Unbound表示服务级动作
type Target string

const (
	Books   Target = "Books"
	Authors Target = "Authors"
	Unbound Target = ""
)

// Request 一次钩子调用的上下文
type Request struct {
	Event  Event
	Target Target

	// ID 单条读取/更新时的主键,列表读取时为0
	ID uint

	// Data 请求负载(CREATE/UPDATE/动作的输入)
	Data any

	// Query 读取参数(分页、投影)
	Query Query

	// Result 处理结果,after处理函数可以读取和替换
	Result any
}

// Query 读取参数
type Query struct {
	Page     int
	PageSize int
	Fields   []string
}

// Handler 钩子处理函数
type Handler func(ctx context.Context, req *Request) error

// key 分发表键
type key struct {
	phase  Phase
	target Target
	event  Event
}
