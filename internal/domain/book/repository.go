package book

import (
	"context"
)

// Repository 图书仓储接口(记录存储)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 富化流程只使用FindStock做按键点查
type Repository interface {
	// Create 插入图书,ID由调用方给出
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// fields非空时只投影这些字段,未投影的Stock为nil
	FindByID(ctx context.Context, id uint, fields ...string) (*Book, error)

	// FindStock 按ID点查库存
	// 返回nil表示库存列为空;图书不存在返回ErrBookNotFound
	FindStock(ctx context.Context, id uint) (*int, error)

	// Update 保存图书全部字段
	Update(ctx context.Context, book *Book) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int      // 页码(从1开始)
	PageSize int      // 每页数量
	Fields   []string // 投影字段,为空时返回全部字段
}

// Projectable 允许投影的字段
var Projectable = map[string]bool{
	"ID":       true,
	"title":    true,
	"descr":    true,
	"author":   true,
	"genre":    true,
	"stock":    true,
	"price":    true,
	"currency": true,
}
