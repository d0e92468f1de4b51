package book

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Author/Genre/Currency是对其他实体的引用,只保存键
// 2. Stock为指针:读取时若未投影stock列则为nil,由富化流程按ID回填
// 3. StockCriticality与AverageRating是派生字段,每次读取时计算,从不持久化
type Book struct {
	ID        uint
	Title     string
	Descr     string
	Author    *AuthorRef
	Genre     *GenreRef
	Stock     *int            // 库存数量,nil表示记录中缺失
	Price     decimal.Decimal // 价格
	Currency  *CurrencyRef
	CreatedAt time.Time
	UpdatedAt time.Time

	StockCriticality Criticality      // 派生:库存紧张程度,0表示未计算
	AverageRating    *decimal.Decimal // 派生:平均评分(1位小数),nil表示无评分
}

// AuthorRef 作者引用
type AuthorRef struct {
	ID uint
}

// GenreRef 分类引用
type GenreRef struct {
	ID uint
}

// CurrencyRef 币种引用(按ISO代码)
type CurrencyRef struct {
	Code string
}

// NewBook 创建新图书(工厂方法)
// 引用字段为0或空串时不建立引用
func NewBook(id uint, title, descr string, authorID, genreID uint, stock int, price decimal.Decimal, currencyCode string) *Book {
	b := &Book{
		ID:    id,
		Title: title,
		Descr: descr,
		Stock: &stock,
		Price: price,
	}
	if authorID != 0 {
		b.Author = &AuthorRef{ID: authorID}
	}
	if genreID != 0 {
		b.Genre = &GenreRef{ID: genreID}
	}
	if currencyCode != "" {
		b.Currency = &CurrencyRef{Code: currencyCode}
	}
	return b
}

// Patch 更新图书时提交的字段,nil表示不修改
type Patch struct {
	Title        *string
	Descr        *string
	AuthorID     *uint
	GenreID      *uint
	Stock        *int
	Price        *decimal.Decimal
	CurrencyCode *string
}

// Apply 合并更新字段
func (b *Book) Apply(p Patch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Descr != nil {
		b.Descr = *p.Descr
	}
	if p.AuthorID != nil {
		b.Author = &AuthorRef{ID: *p.AuthorID}
	}
	if p.GenreID != nil {
		b.Genre = &GenreRef{ID: *p.GenreID}
	}
	if p.Stock != nil {
		stock := *p.Stock
		b.Stock = &stock
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.CurrencyCode != nil {
		b.Currency = &CurrencyRef{Code: *p.CurrencyCode}
	}
	b.UpdatedAt = time.Now()
}

// HasStock 记录中是否带有库存值
func (b *Book) HasStock() bool {
	return b.Stock != nil
}
