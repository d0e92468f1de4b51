package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

func TestSplitFields(t *testing.T) {
	assert.Nil(t, SplitFields(""))
	assert.Nil(t, SplitFields("  "))
	assert.Equal(t, []string{"ID", "title"}, SplitFields("ID, title,"))
}

func TestNewEnrichedBookResponse_UnknownStockIsNull(t *testing.T) {
	b := &book.Book{ID: 201, Title: "Wuthering Heights"}

	raw, err := json.Marshal(NewEnrichedBookResponse(b))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Contains(t, out, "stockCriticality")
	assert.Nil(t, out["stockCriticality"])
	assert.Contains(t, out, "averageRating")
	assert.Nil(t, out["averageRating"])
	assert.NotContains(t, out, "stock")
}

func TestNewEnrichedBookResponse_DerivedFields(t *testing.T) {
	stock := 12
	avg := decimal.RequireFromString("4")
	b := &book.Book{
		ID:               201,
		Title:            "Wuthering Heights",
		Author:           &book.AuthorRef{ID: 101},
		Stock:            &stock,
		Price:            decimal.RequireFromString("11.11"),
		Currency:         &book.CurrencyRef{Code: "GBP"},
		StockCriticality: book.CriticalityMedium,
		AverageRating:    &avg,
	}

	raw, err := json.Marshal(NewEnrichedBookResponse(b))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"ID": 201,
		"title": "Wuthering Heights",
		"author": {"ID": 101},
		"stock": 12,
		"price": 11.11,
		"currency": {"code": "GBP"},
		"stockCriticality": 2,
		"averageRating": 4.0
	}`, string(raw))
}

func TestUpdateBookRequest_ToPatch(t *testing.T) {
	var req UpdateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"stock": 3, "author": {"ID": 7}}`), &req))

	p := req.ToPatch()
	require.NotNil(t, p.Stock)
	assert.Equal(t, 3, *p.Stock)
	require.NotNil(t, p.AuthorID)
	assert.Equal(t, uint(7), *p.AuthorID)
	assert.Nil(t, p.Title)
	assert.Nil(t, p.Price)
}

func TestNewBookResponse_ZeroPriceIsKept(t *testing.T) {
	b := book.NewBook(7, "Free Sample", "", 0, 0, 3, decimal.Zero, "")

	raw, err := json.Marshal(NewBookResponse(b))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Contains(t, out, "price")
	assert.EqualValues(t, 0, out["price"])
}

func TestNewBookResponse_PriceFollowsProjection(t *testing.T) {
	b := &book.Book{ID: 7, Title: "Free Sample"}

	raw, err := json.Marshal(NewEnrichedBookResponse(b, "ID", "title"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"price"`)

	raw, err = json.Marshal(NewEnrichedBookResponse(b, "ID", "price"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":0`)
}

func TestNewEnrichedBookList_NilElementIsNull(t *testing.T) {
	list := NewEnrichedBookList([]*book.Book{{ID: 1}, nil})
	require.Len(t, list, 2)
	assert.Nil(t, list[1])

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `,null]`)
}
