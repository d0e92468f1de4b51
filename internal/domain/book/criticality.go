package book

// Criticality 库存紧张程度
// 1=库存紧张 2=一般 3=充足;0表示未计算(库存未知)
type Criticality int

const (
	CriticalityUnknown Criticality = 0
	CriticalityLow     Criticality = 1
	CriticalityMedium  Criticality = 2
	CriticalityHigh    Criticality = 3
)

// 分档边界
const (
	lowStockBelow  = 10  // stock < 10 → Low
	mediumStockMax = 50  // 10 <= stock <= 50 → Medium
	highStockAbove = 100 // stock > 100 → High
)

// UnmappedBandCriticality 51..100区间使用的档位
// 原有规则没有覆盖这一区间,这里显式归入Medium
const UnmappedBandCriticality = CriticalityMedium

// ClassifyStock 按库存数量计算紧张程度
// 纯函数:同一库存值总是得到同一档位
func ClassifyStock(stock int) Criticality {
	switch {
	case stock > highStockAbove:
		return CriticalityHigh
	case stock < lowStockBelow:
		return CriticalityLow
	case stock <= mediumStockMax:
		return CriticalityMedium
	default:
		return UnmappedBandCriticality
	}
}

// InUnmappedBand 库存是否落在51..100区间
func InUnmappedBand(stock int) bool {
	return stock > mediumStockMax && stock <= highStockAbove
}
