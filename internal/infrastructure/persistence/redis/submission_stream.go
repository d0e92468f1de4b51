package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// SubmissionStream 订单提交记录(Redis Stream)
// 设计说明:
// 1. 每次submitOrder追加一条XADD,只做审计,不参与库存
// 2. MAXLEN ~ 限制Stream长度,旧记录自动淘汰
type SubmissionStream struct {
	client *redis.Client
	key    string
	maxLen int64
}

// NewSubmissionStream 创建订单提交记录
func NewSubmissionStream(client *redis.Client, key string, maxLen int64) *SubmissionStream {
	return &SubmissionStream{client: client, key: key, maxLen: maxLen}
}

// Record 追加一条提交记录
func (s *SubmissionStream) Record(ctx context.Context, sub *order.Submission) error {
	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.key,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"submission_no": sub.SubmissionNo,
			"book":          sub.BookID,
			"quantity":      sub.Quantity,
			"submitted_at":  sub.SubmittedAt.UTC().Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return apperrors.WrapAs(order.ErrRecordFailed, err)
	}
	return nil
}

// LogRecorder 未配置Redis时只写日志
type LogRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder 创建日志记录器
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Record 写一条日志
func (r *LogRecorder) Record(ctx context.Context, sub *order.Submission) error {
	r.logger.InfoContext(ctx, "order submission recorded",
		"submission_no", sub.SubmissionNo, "book_id", sub.BookID, "quantity", sub.Quantity)
	return nil
}
