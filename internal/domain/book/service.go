package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务逻辑和业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:ID不能重复
	CreateBook(ctx context.Context, book *Book) (*Book, error)

	// GetBook 根据ID获取图书,fields为投影字段
	GetBook(ctx context.Context, id uint, fields ...string) (*Book, error)

	// UpdateBook 合并更新图书字段
	UpdateBook(ctx context.Context, id uint, patch Patch) (*Book, error)

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, book *Book) (*Book, error) {
	// 1. ID由调用方给出时先检查是否已存在
	if book.ID != 0 {
		existing, err := s.repo.FindByID(ctx, book.ID)
		if err == nil && existing != nil {
			return nil, ErrBookDuplicate
		}
		if err != nil && !errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
	}

	// 2. 持久化(并发插入时由Repository返回ErrBookDuplicate)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint, fields ...string) (*Book, error) {
	return s.repo.FindByID(ctx, id, fields...)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, patch Patch) (*Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Apply(patch)

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.repo.List(ctx, params)
}
