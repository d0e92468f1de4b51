//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_StockCriticality(t *testing.T) {
	cases := []struct {
		stock int
		want  int
	}{
		{stock: 3, want: 1},
		{stock: 30, want: 2},
		{stock: 75, want: 2},
		{stock: 150, want: 3},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("stock=%d", tc.stock), func(t *testing.T) {
			id := CreateTestBook(t, tc.stock)

			resp := SendJSON(t, http.MethodGet, fmt.Sprintf("%s/catalog/books/%d", BaseURL, id), nil)
			require.Equal(t, 0, resp.Code, resp.Message)

			var b BookData
			require.NoError(t, json.Unmarshal(resp.Data, &b))
			require.NotNil(t, b.StockCriticality)
			assert.Equal(t, tc.want, *b.StockCriticality)
			assert.Nil(t, b.AverageRating, "新书没有评分")
		})
	}
}

func TestCatalog_ProjectionStillClassifies(t *testing.T) {
	id := CreateTestBook(t, 200)

	resp := SendJSON(t, http.MethodGet, fmt.Sprintf("%s/catalog/books/%d?select=ID,title", BaseURL, id), nil)
	require.Equal(t, 0, resp.Code, resp.Message)

	var b BookData
	require.NoError(t, json.Unmarshal(resp.Data, &b))
	assert.Nil(t, b.Stock)
	require.NotNil(t, b.StockCriticality)
	assert.Equal(t, 3, *b.StockCriticality)
}

func TestCatalog_ListIsEnriched(t *testing.T) {
	CreateTestBook(t, 5)

	resp := SendJSON(t, http.MethodGet, BaseURL+"/catalog/books?page=1&page_size=100", nil)
	require.Equal(t, 0, resp.Code, resp.Message)

	var page PageData
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	require.NotEmpty(t, page.List)
	for _, b := range page.List {
		if b.Stock != nil {
			assert.NotNil(t, b.StockCriticality, "book %d", b.ID)
		}
	}
}

func TestCatalog_SubmitOrderDoesNotTouchStock(t *testing.T) {
	id := CreateTestBook(t, 12)

	resp := SendJSON(t, http.MethodPost, BaseURL+"/catalog/submitOrder", map[string]any{"book": id, "quantity": 1000})
	require.Equal(t, 0, resp.Code, resp.Message)

	var s SubmissionData
	require.NoError(t, json.Unmarshal(resp.Data, &s))
	assert.Equal(t, id, s.Book)
	assert.NotEmpty(t, s.SubmissionNo)

	resp = SendJSON(t, http.MethodGet, fmt.Sprintf("%s/catalog/books/%d", BaseURL, id), nil)
	require.Equal(t, 0, resp.Code, resp.Message)
	var b BookData
	require.NoError(t, json.Unmarshal(resp.Data, &b))
	require.NotNil(t, b.Stock)
	assert.Equal(t, 12, *b.Stock)
}

func TestAdmin_CreateBookDuplicate(t *testing.T) {
	id := CreateTestBook(t, 1)

	resp := SendJSON(t, http.MethodPost, BaseURL+"/admin/books/createBook", map[string]any{
		"ID": id, "title": "dup", "stock": 1, "price": 1,
	})
	assert.Equal(t, 40009, resp.Code)
}
