package rating

import (
	"context"
)

// Repository 评分仓储接口(评分存储)
type Repository interface {
	// ListByBookID 查询某本图书的全部评分
	// 没有评分时返回空切片和nil错误
	ListByBookID(ctx context.Context, bookID uint) ([]*Rating, error)
}
