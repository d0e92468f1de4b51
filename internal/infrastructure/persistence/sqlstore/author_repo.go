package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/author"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// authorRepository 作者仓储实现
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrAuthorDuplicate
		}
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// Update 更新作者
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	err := r.db.WithContext(ctx).
		Model(&AuthorModel{ID: a.ID}).
		Select("name", "date_of_birth", "date_of_death", "place_of_birth", "place_of_death", "updated_at").
		Updates(model).Error
	if err != nil {
		return apperrors.Wrap(err, "更新作者失败")
	}
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// List 分页查询作者(按ID升序)
func (r *authorRepository) List(ctx context.Context, page, pageSize int) ([]*author.Author, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&AuthorModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	var models []AuthorModel
	err := r.db.WithContext(ctx).Order("id ASC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, total, nil
}

func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:           a.ID,
		Name:         a.Name,
		DateOfBirth:  a.DateOfBirth,
		DateOfDeath:  a.DateOfDeath,
		PlaceOfBirth: a.PlaceOfBirth,
		PlaceOfDeath: a.PlaceOfDeath,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{
		ID:           m.ID,
		Name:         m.Name,
		DateOfBirth:  m.DateOfBirth,
		DateOfDeath:  m.DateOfDeath,
		PlaceOfBirth: m.PlaceOfBirth,
		PlaceOfDeath: m.PlaceOfDeath,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
