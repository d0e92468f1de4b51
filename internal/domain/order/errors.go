package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrRecordFailed 记录订单提交失败
	ErrRecordFailed = apperrors.New(apperrors.ErrCodeRedisError, "记录订单提交失败")
)
