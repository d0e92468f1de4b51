package book

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrBookDuplicate 图书ID已存在
	ErrBookDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "图书ID已存在")

	// ErrStoreLookup 富化时查询库存或评分失败
	// 整批富化中止,错误原样上抛,不会与"无评分"混淆
	ErrStoreLookup = apperrors.New(apperrors.ErrCodeStoreLookup, "查询图书附加数据失败")
)
