package hook

// Table 分发表,构建完成后只读
type Table struct {
	handlers map[key][]Handler
}

// Lookup 查找某个阶段注册的处理函数
func (t Table) Lookup(phase Phase, target Target, event Event) []Handler {
	return t.handlers[key{phase: phase, target: target, event: event}]
}

// Len 已注册的条目数
func (t Table) Len() int {
	return len(t.handlers)
}

// Builder 分发表构建器
//
//	table := hook.NewBuilder().
//		Register(hook.Before, hook.Books, hook.Create, logPayload).
//		Register(hook.After, hook.Books, hook.Read, enrich).
//		Build()
type Builder struct {
	handlers map[key][]Handler
}

// NewBuilder 创建构建器
func NewBuilder() *Builder {
	return &Builder{handlers: make(map[key][]Handler)}
}

// Register 注册处理函数,同一键按注册顺序执行
func (b *Builder) Register(phase Phase, target Target, event Event, handlers ...Handler) *Builder {
	k := key{phase: phase, target: target, event: event}
	b.handlers[k] = append(b.handlers[k], handlers...)
	return b
}

// Build 生成分发表
// 返回的表持有独立副本,之后对Builder的修改不影响它
func (b *Builder) Build() Table {
	handlers := make(map[key][]Handler, len(b.handlers))
	for k, hs := range b.handlers {
		handlers[k] = append([]Handler(nil), hs...)
	}
	return Table{handlers: handlers}
}
