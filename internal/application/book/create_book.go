package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// CreateBookUseCase createBook动作
// 设计说明:
// 1. 平铺的输入映射为嵌套引用(author/genre为{ID},currency为{code})
// 2. 只插入一次,原样返回插入的记录
// 3. 不重新读取,也不做富化
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建createBook用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest createBook的平铺输入
type CreateBookRequest struct {
	ID       uint
	Title    string
	Descr    string
	Author   uint
	Genre    uint
	Stock    int
	Price    decimal.Decimal
	Currency string
}

// Execute 执行createBook
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*book.Book, error) {
	// 1. 映射为嵌套形状
	b := book.NewBook(req.ID, req.Title, req.Descr, req.Author, req.Genre, req.Stock, req.Price, req.Currency)

	// 2. 插入
	return uc.bookService.CreateBook(ctx, b)
}
