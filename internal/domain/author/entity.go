package author

import (
	"time"
)

// Author 作者实体
// 生卒日期使用ISO日期字符串(YYYY-MM-DD),原样存取
type Author struct {
	ID           uint
	Name         string
	DateOfBirth  string
	DateOfDeath  string
	PlaceOfBirth string
	PlaceOfDeath string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Patch 更新作者时提交的字段,nil表示不修改
type Patch struct {
	Name         *string
	DateOfBirth  *string
	DateOfDeath  *string
	PlaceOfBirth *string
	PlaceOfDeath *string
}

// Apply 合并更新字段
func (a *Author) Apply(p Patch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.DateOfBirth != nil {
		a.DateOfBirth = *p.DateOfBirth
	}
	if p.DateOfDeath != nil {
		a.DateOfDeath = *p.DateOfDeath
	}
	if p.PlaceOfBirth != nil {
		a.PlaceOfBirth = *p.PlaceOfBirth
	}
	if p.PlaceOfDeath != nil {
		a.PlaceOfDeath = *p.PlaceOfDeath
	}
	a.UpdatedAt = time.Now()
}
