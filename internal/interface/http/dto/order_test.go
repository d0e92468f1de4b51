package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

func TestNewSubmitOrderResponse(t *testing.T) {
	s := &order.Submission{
		SubmissionNo: "SUB1767240000123456",
		BookID:       201,
		Quantity:     5,
		SubmittedAt:  time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local),
	}

	raw, err := json.Marshal(NewSubmitOrderResponse(s))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"submission_no": "SUB1767240000123456",
		"book": 201,
		"quantity": 5,
		"submitted_at": "2026-01-01 12:00:00"
	}`, string(raw))
}

func TestSubmitOrderRequest_ToUseCase(t *testing.T) {
	var req SubmitOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"book":3,"quantity":-1}`), &req))

	in := req.ToUseCase()
	assert.Equal(t, uint(3), in.Book)
	assert.Equal(t, -1, in.Quantity)
}
