package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/author"
)

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	ID           uint   `json:"ID" example:"101"`
	Name         string `json:"name" example:"Emily Brontë"`
	DateOfBirth  string `json:"dateOfBirth" example:"1818-07-30"`
	DateOfDeath  string `json:"dateOfDeath" example:"1848-12-19"`
	PlaceOfBirth string `json:"placeOfBirth" example:"Thornton, Yorkshire"`
	PlaceOfDeath string `json:"placeOfDeath" example:"Haworth, Yorkshire"`
}

// ToEntity 转换为领域实体
func (r CreateAuthorRequest) ToEntity() *author.Author {
	return &author.Author{
		ID:           r.ID,
		Name:         r.Name,
		DateOfBirth:  r.DateOfBirth,
		DateOfDeath:  r.DateOfDeath,
		PlaceOfBirth: r.PlaceOfBirth,
		PlaceOfDeath: r.PlaceOfDeath,
	}
}

// UpdateAuthorRequest 更新作者请求,缺省字段不修改
type UpdateAuthorRequest struct {
	Name         *string `json:"name"`
	DateOfBirth  *string `json:"dateOfBirth"`
	DateOfDeath  *string `json:"dateOfDeath"`
	PlaceOfBirth *string `json:"placeOfBirth"`
	PlaceOfDeath *string `json:"placeOfDeath"`
}

// ToPatch 转换为领域更新
func (r UpdateAuthorRequest) ToPatch() author.Patch {
	return author.Patch{
		Name:         r.Name,
		DateOfBirth:  r.DateOfBirth,
		DateOfDeath:  r.DateOfDeath,
		PlaceOfBirth: r.PlaceOfBirth,
		PlaceOfDeath: r.PlaceOfDeath,
	}
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID           uint   `json:"ID" example:"101"`
	Name         string `json:"name" example:"Emily Brontë"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	DateOfDeath  string `json:"dateOfDeath,omitempty"`
	PlaceOfBirth string `json:"placeOfBirth,omitempty"`
	PlaceOfDeath string `json:"placeOfDeath,omitempty"`
}

// NewAuthorResponse 领域实体 → 响应
func NewAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:           a.ID,
		Name:         a.Name,
		DateOfBirth:  a.DateOfBirth,
		DateOfDeath:  a.DateOfDeath,
		PlaceOfBirth: a.PlaceOfBirth,
		PlaceOfDeath: a.PlaceOfDeath,
	}
}

// NewAuthorList 列表转换
func NewAuthorList(authors []*author.Author) []*AuthorResponse {
	list := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		list[i] = NewAuthorResponse(a)
	}
	return list
}
