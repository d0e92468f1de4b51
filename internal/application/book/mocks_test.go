package book

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/rating"
)

// mockBookRepo 记录存储mock
type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) Create(ctx context.Context, b *book.Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookRepo) FindByID(ctx context.Context, id uint, fields ...string) (*book.Book, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*book.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookRepo) FindStock(ctx context.Context, id uint) (*int, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*int); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookRepo) Update(ctx context.Context, b *book.Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	args := m.Called(ctx, params)
	books, _ := args.Get(0).([]*book.Book)
	return books, args.Get(1).(int64), args.Error(2)
}

// mockRatingRepo 评分存储mock
type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) ListByBookID(ctx context.Context, bookID uint) ([]*rating.Rating, error) {
	args := m.Called(ctx, bookID)
	ratings, _ := args.Get(0).([]*rating.Rating)
	return ratings, args.Error(1)
}

func intPtr(v int) *int { return &v }

func ratingsOf(bookID uint, stars ...int) []*rating.Rating {
	out := make([]*rating.Rating, 0, len(stars))
	for _, s := range stars {
		out = append(out, &rating.Rating{BookID: bookID, Stars: s})
	}
	return out
}
