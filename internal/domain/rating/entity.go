package rating

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rating 读者评分
type Rating struct {
	ID        uint
	BookID    uint
	Stars     int // 1..5
	CreatedAt time.Time
}

// AveragePrecision 平均评分保留的小数位
const AveragePrecision = 1

// Average 计算平均评分,对精确商四舍五入到1位小数(只舍入一次)
// 没有评分时返回nil,与"评分为0"区分开
func Average(ratings []*Rating) *decimal.Decimal {
	if len(ratings) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r.Stars)))
	}
	avg := sum.DivRound(decimal.NewFromInt(int64(len(ratings))), AveragePrecision)
	return &avg
}
