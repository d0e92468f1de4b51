package order

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// SubmitOrderUseCase submitOrder动作
// 设计说明:
// 1. 只记录调用,不校验负载,不改变图书状态
// 2. 记录失败只打日志,不影响调用结果
type SubmitOrderUseCase struct {
	recorder order.Recorder
	logger   *slog.Logger
}

// NewSubmitOrderUseCase 创建submitOrder用例
func NewSubmitOrderUseCase(recorder order.Recorder, logger *slog.Logger) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		recorder: recorder,
		logger:   logger,
	}
}

// SubmitOrderRequest submitOrder输入
type SubmitOrderRequest struct {
	Book     uint
	Quantity int
}

// Execute 执行submitOrder
func (uc *SubmitOrderUseCase) Execute(ctx context.Context, req SubmitOrderRequest) (*order.Submission, error) {
	s := order.NewSubmission(req.Book, req.Quantity)

	metrics.IncCounter(metrics.OrderSubmissionsTotal)
	uc.logger.InfoContext(ctx, "order submitted",
		"submission_no", s.SubmissionNo, "book_id", s.BookID, "quantity", s.Quantity)

	if err := uc.recorder.Record(ctx, s); err != nil {
		uc.logger.WarnContext(ctx, "record order submission failed",
			"submission_no", s.SubmissionNo, "error", err)
	}
	return s, nil
}
