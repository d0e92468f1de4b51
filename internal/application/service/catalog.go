package service

import (
	"context"
	"log/slog"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/application/hook"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/event"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// CatalogService 面向读者的目录服务
//
// 分发表:
//
//	before CREATE/UPDATE Books → 记录负载
//	after  READ Books          → 记录结果, 富化
//	on     submitOrder         → 记录提交
//	after  submitOrder         → 发布order.submitted
type CatalogService struct {
	dispatcher  *hook.Dispatcher
	books       book.Service
	submitOrder *apporder.SubmitOrderUseCase
}

// NewCatalogService 创建目录服务并构建分发表
func NewCatalogService(
	books book.Service,
	enricher *appbook.EnrichBooksUseCase,
	submitOrder *apporder.SubmitOrderUseCase,
	events event.Publisher,
	logger *slog.Logger,
) *CatalogService {
	s := &CatalogService{
		books:       books,
		submitOrder: submitOrder,
	}
	logger = logger.With("service", "catalog")

	table := hook.NewBuilder().
		Register(hook.Before, hook.Books, hook.Create, logPayload(logger)).
		Register(hook.Before, hook.Books, hook.Update, logPayload(logger)).
		Register(hook.After, hook.Books, hook.Read, logResult(logger), enrich(enricher)).
		Register(hook.On, hook.Unbound, hook.SubmitOrder, s.onSubmitOrder).
		Register(hook.After, hook.Unbound, hook.SubmitOrder, publish(events, logger, event.OrderSubmitted)).
		Register(hook.After, hook.Books, hook.Create, publish(events, logger, event.BookCreated)).
		Register(hook.After, hook.Books, hook.Update, publish(events, logger, event.BookUpdated)).
		Build()

	s.dispatcher = hook.NewDispatcher("catalog", table, logger)
	return s
}

// onSubmitOrder on submitOrder
func (s *CatalogService) onSubmitOrder(ctx context.Context, req *hook.Request) error {
	in, ok := req.Data.(apporder.SubmitOrderRequest)
	if !ok {
		return unexpectedPayload(req)
	}
	submission, err := s.submitOrder.Execute(ctx, in)
	if err != nil {
		return err
	}
	req.Result = submission
	return nil
}

// GetBook 读取单本图书(富化)
func (s *CatalogService) GetBook(ctx context.Context, id uint, fields ...string) (*book.Book, error) {
	req := &hook.Request{Event: hook.Read, Target: hook.Books, ID: id, Query: hook.Query{Fields: fields}}
	return resultAs[*book.Book](s.dispatcher.Dispatch(ctx, req, readBooks(s.books)))
}

// ListBooks 分页读取图书(富化)
func (s *CatalogService) ListBooks(ctx context.Context, q hook.Query) (*appbook.Page, error) {
	req := &hook.Request{Event: hook.Read, Target: hook.Books, Query: q}
	return resultAs[*appbook.Page](s.dispatcher.Dispatch(ctx, req, readBooks(s.books)))
}

// CreateBook 通用CREATE
func (s *CatalogService) CreateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	req := &hook.Request{Event: hook.Create, Target: hook.Books, ID: b.ID, Data: b}
	return resultAs[*book.Book](s.dispatcher.Dispatch(ctx, req, createBooks(s.books)))
}

// UpdateBook 通用UPDATE
func (s *CatalogService) UpdateBook(ctx context.Context, id uint, patch book.Patch) (*book.Book, error) {
	req := &hook.Request{Event: hook.Update, Target: hook.Books, ID: id, Data: patch}
	return resultAs[*book.Book](s.dispatcher.Dispatch(ctx, req, updateBooks(s.books)))
}

// SubmitOrder submitOrder动作:只记录调用
func (s *CatalogService) SubmitOrder(ctx context.Context, in apporder.SubmitOrderRequest) (*order.Submission, error) {
	req := &hook.Request{Event: hook.SubmitOrder, Target: hook.Unbound, Data: in}
	return resultAs[*order.Submission](s.dispatcher.Dispatch(ctx, req, nil))
}
