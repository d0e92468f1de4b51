package sqlstore

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM
// 3. 引用字段按外键列存储(author_id/genre_id/currency_code)
// 4. stock可为NULL,读取时为nil
// 5. 派生字段(stockCriticality/averageRating)不建列
type BookModel struct {
	ID           uint            `gorm:"primaryKey;comment:图书ID"`
	Title        string          `gorm:"size:200;not null;comment:书名"`
	Descr        string          `gorm:"type:text;comment:描述"`
	AuthorID     *uint           `gorm:"index;comment:作者ID"`
	GenreID      *uint           `gorm:"index;comment:分类ID"`
	Stock        *int            `gorm:"comment:库存数量"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0;comment:价格"`
	CurrencyCode *string         `gorm:"size:3;comment:币种代码"`
	CreatedAt    time.Time       `gorm:"comment:创建时间"`
	UpdatedAt    time.Time       `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:111;not null;comment:姓名"`
	DateOfBirth  string    `gorm:"size:10;comment:出生日期"`
	DateOfDeath  string    `gorm:"size:10;comment:逝世日期"`
	PlaceOfBirth string    `gorm:"size:255;comment:出生地"`
	PlaceOfDeath string    `gorm:"size:255;comment:逝世地"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
	UpdatedAt    time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel GORM分类模型(树形结构)
type GenreModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:111;not null"`
	ParentID *uint  `gorm:"index"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// CurrencyModel GORM币种模型
type CurrencyModel struct {
	Code   string `gorm:"primaryKey;size:3"`
	Name   string `gorm:"size:60"`
	Symbol string `gorm:"size:5"`
}

// TableName 指定表名
func (CurrencyModel) TableName() string {
	return "currencies"
}

// RatingModel GORM评分模型
type RatingModel struct {
	ID        uint      `gorm:"primaryKey"`
	BookID    uint      `gorm:"index;not null;comment:图书ID"`
	Stars     int       `gorm:"not null;comment:星级(1-5)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (RatingModel) TableName() string {
	return "ratings"
}
