package sqlstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func seedBooks(t *testing.T, repo book.Repository) {
	t.Helper()
	ctx := context.Background()
	seed := []*book.Book{
		book.NewBook(201, "Wuthering Heights", "wuthering", 101, 11, 12, decimal.RequireFromString("11.11"), "GBP"),
		book.NewBook(207, "Jane Eyre", "jane", 107, 11, 11, decimal.RequireFromString("12.34"), "GBP"),
		book.NewBook(251, "The Raven", "raven", 150, 16, 333, decimal.RequireFromString("13.13"), "USD"),
	}
	for _, b := range seed {
		require.NoError(t, repo.Create(ctx, b))
	}
}

func TestBookRepository_CreateAndFind(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedBooks(t, repo)
	ctx := context.Background()

	b, err := repo.FindByID(ctx, 201)
	require.NoError(t, err)
	assert.Equal(t, "Wuthering Heights", b.Title)
	assert.Equal(t, &book.AuthorRef{ID: 101}, b.Author)
	assert.Equal(t, &book.GenreRef{ID: 11}, b.Genre)
	assert.Equal(t, &book.CurrencyRef{Code: "GBP"}, b.Currency)
	require.NotNil(t, b.Stock)
	assert.Equal(t, 12, *b.Stock)
	assert.True(t, b.Price.Equal(decimal.RequireFromString("11.11")), "price=%s", b.Price)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_Duplicate(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedBooks(t, repo)

	err := repo.Create(context.Background(), book.NewBook(201, "dup", "", 0, 0, 1, decimal.Zero, ""))
	assert.ErrorIs(t, err, book.ErrBookDuplicate)
}

func TestBookRepository_Projection(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedBooks(t, repo)
	ctx := context.Background()

	b, err := repo.FindByID(ctx, 251, "title")
	require.NoError(t, err)
	assert.Equal(t, uint(251), b.ID, "ID总是返回")
	assert.Equal(t, "The Raven", b.Title)
	assert.Nil(t, b.Stock, "未投影stock时为nil")
	assert.Nil(t, b.Author)

	_, err = repo.FindByID(ctx, 251, "isbn")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
}

func TestBookRepository_FindStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	seedBooks(t, repo)
	ctx := context.Background()

	stock, err := repo.FindStock(ctx, 251)
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.Equal(t, 333, *stock)

	// stock列为NULL
	require.NoError(t, db.Create(&BookModel{ID: 300, Title: "no stock"}).Error)
	stock, err = repo.FindStock(ctx, 300)
	require.NoError(t, err)
	assert.Nil(t, stock)

	_, err = repo.FindStock(ctx, 404)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_Update(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedBooks(t, repo)
	ctx := context.Background()

	b, err := repo.FindByID(ctx, 207)
	require.NoError(t, err)
	createdAt := b.CreatedAt

	stock := 0
	title := "Jane Eyre (2nd)"
	b.Apply(book.Patch{Stock: &stock, Title: &title})
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.FindByID(ctx, 207)
	require.NoError(t, err)
	assert.Equal(t, "Jane Eyre (2nd)", got.Title)
	require.NotNil(t, got.Stock)
	assert.Equal(t, 0, *got.Stock)
	assert.Equal(t, "jane", got.Descr)
	assert.WithinDuration(t, createdAt, got.CreatedAt, 0, "created_at保持不变")
}

func TestBookRepository_List(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedBooks(t, repo)
	ctx := context.Background()

	books, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, books, 2)
	assert.Equal(t, uint(201), books[0].ID)
	assert.Equal(t, uint(207), books[1].ID)

	books, _, err = repo.List(ctx, book.ListParams{Page: 2, PageSize: 2, Fields: []string{"title", "price"}})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, uint(251), books[0].ID)
	assert.Nil(t, books[0].Stock)
}
