//go:build integration

// Package integration 针对运行中服务的端到端测试
//
//	bookshop serve --config config/config.yaml
//	go test -tags integration ./test/integration/...
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// BaseURL API基础URL,可用BOOKSHOP_BASE_URL覆盖
var BaseURL = func() string {
	if u := os.Getenv("BOOKSHOP_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080/api/v1"
}()

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BookData 图书响应数据
type BookData struct {
	ID               uint         `json:"ID"`
	Title            string       `json:"title"`
	Stock            *int         `json:"stock"`
	StockCriticality *int         `json:"stockCriticality"`
	AverageRating    *json.Number `json:"averageRating"`
}

// PageData 分页响应数据
type PageData struct {
	List     []BookData `json:"list"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// SubmissionData submitOrder响应数据
type SubmissionData struct {
	SubmissionNo string `json:"submission_no"`
	Book         uint   `json:"book"`
	Quantity     int    `json:"quantity"`
}

// SendJSON 发送请求并解析统一响应
func SendJSON(t *testing.T, method, url string, data any) *Response {
	t.Helper()
	var body io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	return &result
}

var idSeq atomic.Uint32

// NextBookID 生成本次运行内唯一的图书ID
func NextBookID() uint {
	base := uint(time.Now().Unix()%100000) * 1000
	return base + uint(idSeq.Add(1))
}

// CreateTestBook 通过createBook动作创建图书
func CreateTestBook(t *testing.T, stock int) uint {
	t.Helper()
	id := NextBookID()
	resp := SendJSON(t, http.MethodPost, BaseURL+"/admin/books/createBook", map[string]any{
		"ID":       id,
		"title":    "集成测试用图书",
		"author":   0,
		"genre":    0,
		"stock":    stock,
		"price":    9.99,
		"currency": "GBP",
	})
	require.Equal(t, 0, resp.Code, "创建图书失败: %s", resp.Message)
	return id
}
