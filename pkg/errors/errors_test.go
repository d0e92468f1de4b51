package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAs(t *testing.T) {
	sentinel := New(ErrCodeStoreLookup, "存储查询失败")
	cause := errors.New("connection refused")

	err := WrapAs(sentinel, cause)

	assert.ErrorIs(t, err, sentinel, "应匹配预定义错误")
	assert.ErrorIs(t, err, cause, "应保留底层错误")
	assert.Equal(t, ErrCodeStoreLookup, GetAppError(err).Code)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppErrorIs_DifferentCode(t *testing.T) {
	err := WrapAs(ErrDatabaseError, errors.New("boom"))

	assert.NotErrorIs(t, err, ErrRedisError)
	assert.NotErrorIs(t, ErrDatabaseError, ErrRedisError)
}

func TestGetAppError(t *testing.T) {
	t.Run("已是AppError", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", ErrInvalidParams)
		assert.Same(t, ErrInvalidParams, GetAppError(wrapped))
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("raw"))
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.True(t, IsAppError(appErr))
	})
}
