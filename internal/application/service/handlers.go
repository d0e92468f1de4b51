package service

import (
	"context"
	"fmt"
	"log/slog"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/application/hook"
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/event"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 分页默认值
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(q hook.Query) hook.Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > maxPageSize {
		q.PageSize = defaultPageSize
	}
	return q
}

// =========================================
// 通用持久化操作(没有注册on处理函数时执行)
// =========================================

func readBooks(books book.Service) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		if req.ID != 0 {
			b, err := books.GetBook(ctx, req.ID, req.Query.Fields...)
			if err != nil {
				return err
			}
			req.Result = b
			return nil
		}

		q := normalizePage(req.Query)
		list, total, err := books.ListBooks(ctx, book.ListParams{Page: q.Page, PageSize: q.PageSize, Fields: q.Fields})
		if err != nil {
			return err
		}
		req.Result = &appbook.Page{Books: list, Total: total, Page: q.Page, PageSize: q.PageSize}
		return nil
	}
}

func createBooks(books book.Service) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		b, ok := req.Data.(*book.Book)
		if !ok {
			return unexpectedPayload(req)
		}
		created, err := books.CreateBook(ctx, b)
		if err != nil {
			return err
		}
		req.Result = created
		return nil
	}
}

func updateBooks(books book.Service) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		patch, ok := req.Data.(book.Patch)
		if !ok {
			return unexpectedPayload(req)
		}
		updated, err := books.UpdateBook(ctx, req.ID, patch)
		if err != nil {
			return err
		}
		req.Result = updated
		return nil
	}
}

// AuthorPage 作者分页读取结果
type AuthorPage struct {
	Authors  []*author.Author
	Total    int64
	Page     int
	PageSize int
}

func readAuthors(authors author.Service) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		if req.ID != 0 {
			a, err := authors.GetAuthor(ctx, req.ID)
			if err != nil {
				return err
			}
			req.Result = a
			return nil
		}

		q := normalizePage(req.Query)
		list, total, err := authors.ListAuthors(ctx, q.Page, q.PageSize)
		if err != nil {
			return err
		}
		req.Result = &AuthorPage{Authors: list, Total: total, Page: q.Page, PageSize: q.PageSize}
		return nil
	}
}

func createAuthors(authors author.Service) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		a, ok := req.Data.(*author.Author)
		if !ok {
			return unexpectedPayload(req)
		}
		created, err := authors.CreateAuthor(ctx, a)
		if err != nil {
			return err
		}
		req.Result = created
		return nil
	}
}

func updateAuthors(authors author.Service) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		patch, ok := req.Data.(author.Patch)
		if !ok {
			return unexpectedPayload(req)
		}
		updated, err := authors.UpdateAuthor(ctx, req.ID, patch)
		if err != nil {
			return err
		}
		req.Result = updated
		return nil
	}
}

func unexpectedPayload(req *hook.Request) error {
	return apperrors.Wrapf(nil, "%s %s: 不支持的负载类型 %T", req.Target, req.Event, req.Data)
}

// =========================================
// 钩子处理函数
// =========================================

// logPayload before CREATE/UPDATE:记录请求负载
func logPayload(logger *slog.Logger) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		logger.InfoContext(ctx, "before "+string(req.Event),
			"target", req.Target, "id", req.ID, "payload", fmt.Sprintf("%+v", req.Data))
		return nil
	}
}

// logResult after READ:记录读取结果
func logResult(logger *slog.Logger) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		logger.InfoContext(ctx, "after READ", "target", req.Target, "id", req.ID, "records", countRecords(req.Result))
		return nil
	}
}

func countRecords(result any) int {
	switch v := result.(type) {
	case nil:
		return 0
	case []*book.Book:
		return len(v)
	case *appbook.Page:
		return len(v.Books)
	case *AuthorPage:
		return len(v.Authors)
	default:
		return 1
	}
}

// enrich after READ Books:富化读取结果
func enrich(uc *appbook.EnrichBooksUseCase) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		enriched, err := uc.Execute(ctx, req.Result)
		if err != nil {
			return err
		}
		req.Result = enriched
		return nil
	}
}

// publish 写操作成功后发布生命周期事件
// 发布失败只记录日志,不影响请求结果
func publish(events event.Publisher, logger *slog.Logger, eventType string) hook.Handler {
	return func(ctx context.Context, req *hook.Request) error {
		id, ok := entityID(req.Result)
		if !ok {
			return nil
		}
		if err := events.Publish(ctx, event.New(eventType, id, req.Result)); err != nil {
			logger.WarnContext(ctx, "publish lifecycle event failed", "type", eventType, "id", id, "error", err)
		}
		return nil
	}
}

func entityID(result any) (uint, bool) {
	switch v := result.(type) {
	case *book.Book:
		if v != nil {
			return v.ID, true
		}
	case *author.Author:
		if v != nil {
			return v.ID, true
		}
	case *order.Submission:
		if v != nil {
			return v.BookID, true
		}
	}
	return 0, false
}

// resultAs 将分发结果断言为具体类型
func resultAs[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	v, ok := result.(T)
	if !ok {
		return zero, apperrors.Wrapf(nil, "分发结果类型错误: %T", result)
	}
	return v, nil
}
