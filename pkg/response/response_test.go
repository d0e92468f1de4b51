package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestError_MapsAppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, apperrors.WrapAs(apperrors.ErrDatabaseError, errors.New("dial tcp: refused")))

	resp := decode(t, w)
	assert.Equal(t, apperrors.ErrCodeDatabaseError, resp.Code)
	assert.Equal(t, "数据库错误", resp.Message)
	assert.NotContains(t, w.Body.String(), "refused", "内部错误不能返回给客户端")
}

func TestError_PlainErrorIsInternal(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("boom"))

	assert.Equal(t, apperrors.ErrCodeInternal, decode(t, w).Code)
}

func TestNewPageData(t *testing.T) {
	p := NewPageData([]int{1, 2}, 41, 1, 20)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPageData(nil, 40, 2, 20)
	assert.Equal(t, 2, p.TotalPages)

	p = NewPageData(nil, 5, 1, 0)
	assert.Equal(t, 0, p.TotalPages)
}
