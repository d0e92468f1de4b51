package book

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo 内存仓储
type memRepo struct {
	books   map[uint]*Book
	lastLP  ListParams
	findErr error
}

func newMemRepo() *memRepo {
	return &memRepo{books: make(map[uint]*Book)}
}

func (r *memRepo) Create(_ context.Context, b *Book) error {
	if _, ok := r.books[b.ID]; ok {
		return ErrBookDuplicate
	}
	r.books[b.ID] = b
	return nil
}

func (r *memRepo) FindByID(_ context.Context, id uint, _ ...string) (*Book, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

func (r *memRepo) FindStock(_ context.Context, id uint) (*int, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b.Stock, nil
}

func (r *memRepo) Update(_ context.Context, b *Book) error {
	r.books[b.ID] = b
	return nil
}

func (r *memRepo) List(_ context.Context, p ListParams) ([]*Book, int64, error) {
	r.lastLP = p
	out := make([]*Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func TestService_CreateBook(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		b := NewBook(201, "Wuthering Heights", "", 101, 11, 12, decimal.RequireFromString("11.11"), "GBP")
		got, err := svc.CreateBook(ctx, b)
		require.NoError(t, err)
		assert.Same(t, b, got)
		assert.Equal(t, uint(101), got.Author.ID)
		assert.Equal(t, "GBP", got.Currency.Code)
	})

	t.Run("ID重复", func(t *testing.T) {
		b := NewBook(201, "dup", "", 0, 0, 1, decimal.Zero, "")
		_, err := svc.CreateBook(ctx, b)
		assert.ErrorIs(t, err, ErrBookDuplicate)
	})

	t.Run("查询失败原样返回", func(t *testing.T) {
		cause := errors.New("db down")
		repo.findErr = cause
		defer func() { repo.findErr = nil }()

		_, err := svc.CreateBook(ctx, NewBook(999, "x", "", 0, 0, 1, decimal.Zero, ""))
		assert.ErrorIs(t, err, cause)
	})
}

func TestService_UpdateBook(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()
	_, err := svc.CreateBook(ctx, NewBook(1, "old", "d", 1, 1, 5, decimal.NewFromInt(3), "EUR"))
	require.NoError(t, err)

	title := "new"
	stock := 77
	got, err := svc.UpdateBook(ctx, 1, Patch{Title: &title, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "d", got.Descr, "未提交的字段保持不变")
	require.NotNil(t, got.Stock)
	assert.Equal(t, 77, *got.Stock)

	_, err = svc.UpdateBook(ctx, 404, Patch{Title: &title})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestService_ListBooks_DefaultPaging(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	_, _, err := svc.ListBooks(context.Background(), ListParams{Page: 0, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastLP.Page)
	assert.Equal(t, 20, repo.lastLP.PageSize)
}
