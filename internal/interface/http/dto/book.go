package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/rating"
)

// RefID 按ID引用的实体(author/genre)
type RefID struct {
	ID uint `json:"ID" example:"101"`
}

// CurrencyRef 按代码引用的币种
type CurrencyRef struct {
	Code string `json:"code" example:"GBP"`
}

// CreateBookActionRequest createBook动作的平铺输入
type CreateBookActionRequest struct {
	ID       uint            `json:"ID" example:"201"`
	Title    string          `json:"title" example:"Wuthering Heights"`
	Descr    string          `json:"descr" example:"Wuthering Heights, Emily Brontë's only novel..."`
	Author   uint            `json:"author" example:"101"`
	Genre    uint            `json:"genre" example:"11"`
	Stock    int             `json:"stock" example:"12"`
	Price    decimal.Decimal `json:"price" swaggertype:"number" example:"11.11"`
	Currency string          `json:"currency" example:"GBP"`
}

// ToUseCase 转换为应用层输入
func (r CreateBookActionRequest) ToUseCase() appbook.CreateBookRequest {
	return appbook.CreateBookRequest{
		ID:       r.ID,
		Title:    r.Title,
		Descr:    r.Descr,
		Author:   r.Author,
		Genre:    r.Genre,
		Stock:    r.Stock,
		Price:    r.Price,
		Currency: r.Currency,
	}
}

// CreateBookRequest 通用CREATE的嵌套输入
type CreateBookRequest struct {
	ID       uint            `json:"ID" example:"201"`
	Title    string          `json:"title" example:"Wuthering Heights"`
	Descr    string          `json:"descr"`
	Author   *RefID          `json:"author"`
	Genre    *RefID          `json:"genre"`
	Stock    *int            `json:"stock" example:"12"`
	Price    decimal.Decimal `json:"price" swaggertype:"number" example:"11.11"`
	Currency *CurrencyRef    `json:"currency"`
}

// ToEntity 转换为领域实体
func (r CreateBookRequest) ToEntity() *book.Book {
	b := &book.Book{
		ID:    r.ID,
		Title: r.Title,
		Descr: r.Descr,
		Stock: r.Stock,
		Price: r.Price,
	}
	if r.Author != nil {
		b.Author = &book.AuthorRef{ID: r.Author.ID}
	}
	if r.Genre != nil {
		b.Genre = &book.GenreRef{ID: r.Genre.ID}
	}
	if r.Currency != nil {
		b.Currency = &book.CurrencyRef{Code: r.Currency.Code}
	}
	return b
}

// UpdateBookRequest 通用UPDATE输入,缺省字段不修改
type UpdateBookRequest struct {
	Title    *string          `json:"title"`
	Descr    *string          `json:"descr"`
	Author   *RefID           `json:"author"`
	Genre    *RefID           `json:"genre"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price" swaggertype:"number"`
	Currency *CurrencyRef     `json:"currency"`
}

// ToPatch 转换为领域更新
func (r UpdateBookRequest) ToPatch() book.Patch {
	p := book.Patch{
		Title: r.Title,
		Descr: r.Descr,
		Stock: r.Stock,
		Price: r.Price,
	}
	if r.Author != nil {
		id := r.Author.ID
		p.AuthorID = &id
	}
	if r.Genre != nil {
		id := r.Genre.ID
		p.GenreID = &id
	}
	if r.Currency != nil {
		code := r.Currency.Code
		p.CurrencyCode = &code
	}
	return p
}

// ListQuery 列表查询参数
type ListQuery struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"20"`
	Select   string `form:"select" example:"ID,title"` // 投影字段,逗号分隔
}

// Fields 解析投影字段
func (q ListQuery) Fields() []string {
	return SplitFields(q.Select)
}

// SplitFields 解析逗号分隔的字段列表
func SplitFields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// BookResponse 图书记录(不含派生字段)
// createBook、CREATE、UPDATE原样返回记录时使用
type BookResponse struct {
	ID       uint         `json:"ID" example:"201"`
	Title    string       `json:"title" example:"Wuthering Heights"`
	Descr    string       `json:"descr,omitempty"`
	Author   *RefID       `json:"author,omitempty"`
	Genre    *RefID       `json:"genre,omitempty"`
	Stock    *int         `json:"stock,omitempty" example:"12"`
	Price    *json.Number `json:"price,omitempty" swaggertype:"number" example:"11.11"`
	Currency *CurrencyRef `json:"currency,omitempty"`
}

// EnrichedBookResponse 读取结果(含派生字段)
// stockCriticality: 1=库存紧张 2=一般 3=充足,库存未知时为null
// averageRating: 1位小数,没有评分时为null
type EnrichedBookResponse struct {
	BookResponse
	StockCriticality *int         `json:"stockCriticality" example:"2"`
	AverageRating    *json.Number `json:"averageRating" swaggertype:"number" example:"4.0"`
}

// NewBookResponse 领域实体 → 响应
// fields为读取时的投影字段,为空表示全部字段;price未被投影时不输出,否则总是输出(包括0)
func NewBookResponse(b *book.Book, fields ...string) *BookResponse {
	resp := &BookResponse{
		ID:    b.ID,
		Title: b.Title,
		Descr: b.Descr,
		Stock: b.Stock,
	}
	if selected(fields, "price") {
		price := json.Number(b.Price.String())
		resp.Price = &price
	}
	if b.Author != nil {
		resp.Author = &RefID{ID: b.Author.ID}
	}
	if b.Genre != nil {
		resp.Genre = &RefID{ID: b.Genre.ID}
	}
	if b.Currency != nil {
		resp.Currency = &CurrencyRef{Code: b.Currency.Code}
	}
	return resp
}

// NewEnrichedBookResponse 富化后的领域实体 → 响应
func NewEnrichedBookResponse(b *book.Book, fields ...string) *EnrichedBookResponse {
	resp := &EnrichedBookResponse{BookResponse: *NewBookResponse(b, fields...)}
	if b.StockCriticality != book.CriticalityUnknown {
		tier := int(b.StockCriticality)
		resp.StockCriticality = &tier
	}
	if b.AverageRating != nil {
		avg := json.Number(b.AverageRating.StringFixed(rating.AveragePrecision))
		resp.AverageRating = &avg
	}
	return resp
}

// NewEnrichedBookList 列表转换,保持顺序,nil元素输出为null
func NewEnrichedBookList(books []*book.Book, fields ...string) []*EnrichedBookResponse {
	list := make([]*EnrichedBookResponse, len(books))
	for i, b := range books {
		if b == nil {
			continue
		}
		list[i] = NewEnrichedBookResponse(b, fields...)
	}
	return list
}

// selected 字段是否在投影中
func selected(fields []string, name string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
