package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bookColumns 字段名到列名的映射
var bookColumns = map[string]string{
	"ID":       "id",
	"title":    "title",
	"descr":    "descr",
	"author":   "author_id",
	"genre":    "genre_id",
	"stock":    "stock",
	"price":    "price",
	"currency": "currency_code",
}

// updatableBookColumns Update写入的列
var updatableBookColumns = []string{"title", "descr", "author_id", "genre_id", "stock", "price", "currency_code", "updated_at"}

// bookRepository 图书仓储实现
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如主键重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := toBookModel(b)

	// 2. 插入数据库
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrBookDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填ID和时间
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint, fields ...string) (*book.Book, error) {
	query, err := r.project(r.db.WithContext(ctx).Model(&BookModel{}), fields)
	if err != nil {
		return nil, err
	}

	var model BookModel
	if err := query.Where("id = ?", id).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindStock 按ID点查库存
func (r *bookRepository) FindStock(ctx context.Context, id uint) (*int, error) {
	var model BookModel
	err := r.db.WithContext(ctx).
		Model(&BookModel{}).
		Select("id", "stock").
		Where("id = ?", id).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存失败")
	}
	return model.Stock, nil
}

// Update 更新图书
// 只写入可修改的列,created_at保持不变
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := r.db.WithContext(ctx).
		Model(&BookModel{ID: b.ID}).
		Select(updatableBookColumns).
		Updates(model).Error
	if err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// List 分页查询图书列表(按ID升序)
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BookModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	query, err := r.project(r.db.WithContext(ctx).Model(&BookModel{}), params.Fields)
	if err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize
	var models []BookModel
	err = query.Order("id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// project 按字段投影,ID总是返回
func (r *bookRepository) project(query *gorm.DB, fields []string) (*gorm.DB, error) {
	if len(fields) == 0 {
		return query, nil
	}

	columns := []string{"id"}
	for _, f := range fields {
		column, ok := bookColumns[f]
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的字段: "+f)
		}
		if column != "id" {
			columns = append(columns, column)
		}
	}
	return query.Select(columns), nil
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	model := &BookModel{
		ID:        b.ID,
		Title:     b.Title,
		Descr:     b.Descr,
		Stock:     b.Stock,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Author != nil {
		id := b.Author.ID
		model.AuthorID = &id
	}
	if b.Genre != nil {
		id := b.Genre.ID
		model.GenreID = &id
	}
	if b.Currency != nil {
		code := b.Currency.Code
		model.CurrencyCode = &code
	}
	return model
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:        model.ID,
		Title:     model.Title,
		Descr:     model.Descr,
		Stock:     model.Stock,
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.AuthorID != nil {
		b.Author = &book.AuthorRef{ID: *model.AuthorID}
	}
	if model.GenreID != nil {
		b.Genre = &book.GenreRef{ID: *model.GenreID}
	}
	if model.CurrencyCode != nil {
		b.Currency = &book.CurrencyRef{Code: *model.CurrencyCode}
	}
	return b
}
