package author

import (
	"context"
	"errors"
	"strings"
)

// Service 作者领域服务接口
type Service interface {
	CreateAuthor(ctx context.Context, author *Author) (*Author, error)
	GetAuthor(ctx context.Context, id uint) (*Author, error)
	UpdateAuthor(ctx context.Context, id uint, patch Patch) (*Author, error)
	ListAuthors(ctx context.Context, page, pageSize int) ([]*Author, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
// 业务规则:姓名不能为空,ID不能重复
func (s *service) CreateAuthor(ctx context.Context, a *Author) (*Author, error) {
	if strings.TrimSpace(a.Name) == "" {
		return nil, ErrInvalidName
	}

	if a.ID != 0 {
		existing, err := s.repo.FindByID(ctx, a.ID)
		if err == nil && existing != nil {
			return nil, ErrAuthorDuplicate
		}
		if err != nil && !errors.Is(err, ErrAuthorNotFound) {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAuthor 根据ID获取作者
func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAuthor 更新作者
func (s *service) UpdateAuthor(ctx context.Context, id uint, patch Patch) (*Author, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrInvalidName
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Apply(patch)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAuthors 分页查询作者
func (s *service) ListAuthors(ctx context.Context, page, pageSize int) ([]*Author, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.List(ctx, page, pageSize)
}
