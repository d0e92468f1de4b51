package dto

import (
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// SubmitOrderRequest submitOrder动作请求
// 负载不做校验,原样记录
type SubmitOrderRequest struct {
	Book     uint `json:"book" example:"201"`
	Quantity int  `json:"quantity" example:"5"`
}

// ToUseCase 转换为应用层输入
func (r SubmitOrderRequest) ToUseCase() apporder.SubmitOrderRequest {
	return apporder.SubmitOrderRequest{Book: r.Book, Quantity: r.Quantity}
}

// SubmitOrderResponse submitOrder动作响应
type SubmitOrderResponse struct {
	SubmissionNo string `json:"submission_no" example:"SUB1767240000123456"`
	Book         uint   `json:"book" example:"201"`
	Quantity     int    `json:"quantity" example:"5"`
	SubmittedAt  string `json:"submitted_at" example:"2026-01-01 12:00:00"`
}

// NewSubmitOrderResponse 从提交记录创建响应
func NewSubmitOrderResponse(s *order.Submission) *SubmitOrderResponse {
	return &SubmitOrderResponse{
		SubmissionNo: s.SubmissionNo,
		Book:         s.BookID,
		Quantity:     s.Quantity,
		SubmittedAt:  s.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
}
