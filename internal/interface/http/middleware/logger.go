package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookshop/pkg/response"
)

// RequestIDHeader 请求ID响应头
const RequestIDHeader = "X-Request-ID"

// slowRequest 超过该耗时记录告警
const slowRequest = 3 * time.Second

// RequestLogger 请求日志中间件
// 1. 为每个请求生成请求ID,写入响应头
// 2. 注入带request_id的logger,供response.Error等使用
// 3. 请求结束后输出方法、路径、状态码与耗时
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		log := base.With("request_id", requestID)
		c.Set(response.LoggerKey, log)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case latency > slowRequest:
			log.Warn("slow request", attrs...)
		case c.Writer.Status() >= 500:
			log.Error("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}
