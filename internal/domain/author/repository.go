package author

import (
	"context"
)

// Repository 作者仓储接口
type Repository interface {
	Create(ctx context.Context, author *Author) error
	FindByID(ctx context.Context, id uint) (*Author, error)
	Update(ctx context.Context, author *Author) error
	List(ctx context.Context, page, pageSize int) ([]*Author, int64, error)
}
