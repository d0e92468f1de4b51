package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/rating"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// ratingRepository 评分仓储实现
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository 创建评分仓储
func NewRatingRepository(db *gorm.DB) rating.Repository {
	return &ratingRepository{db: db}
}

// ListByBookID 查询某本图书的全部评分
func (r *ratingRepository) ListByBookID(ctx context.Context, bookID uint) ([]*rating.Rating, error) {
	var models []RatingModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评分失败")
	}

	ratings := make([]*rating.Rating, len(models))
	for i, m := range models {
		ratings[i] = &rating.Rating{
			ID:        m.ID,
			BookID:    m.BookID,
			Stars:     m.Stars,
			CreatedAt: m.CreatedAt,
		}
	}
	return ratings, nil
}
