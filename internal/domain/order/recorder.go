package order

import (
	"context"
)

// Recorder 订单提交记录接口
// 由infrastructure层实现(Redis Stream或仅日志)
type Recorder interface {
	Record(ctx context.Context, s *Submission) error
}
