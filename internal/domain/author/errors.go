package author

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrAuthorDuplicate 作者ID已存在
	ErrAuthorDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "作者ID已存在")

	// ErrInvalidName 作者姓名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "作者姓名不能为空")
)
