package order

import (
	"time"
)

// Submission 订单提交
// 只记录提交本身:不校验负载,不扣减库存,不改变图书状态
type Submission struct {
	SubmissionNo string    // 提交编号(审计用)
	BookID       uint      // 图书ID
	Quantity     int       // 购买数量
	SubmittedAt  time.Time // 提交时间
}

// NewSubmission 创建订单提交(工厂方法)
func NewSubmission(bookID uint, quantity int) *Submission {
	return &Submission{
		SubmissionNo: GenerateSubmissionNo(),
		BookID:       bookID,
		Quantity:     quantity,
		SubmittedAt:  time.Now(),
	}
}
