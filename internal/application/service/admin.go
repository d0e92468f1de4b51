package service

import (
	"context"
	"log/slog"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/application/hook"
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/event"
)

// AdminService 管理端服务:维护图书和作者
//
// 分发表:
//
//	before CREATE/UPDATE Books    → 记录负载
//	after  READ Books             → 富化
//	before CREATE/UPDATE Authors  → 记录负载
//	after  READ Authors           → 记录结果
//	on     Books.createBook       → createBook
//	after  CREATE/UPDATE/createBook → 发布生命周期事件
type AdminService struct {
	dispatcher *hook.Dispatcher
	books      book.Service
	authors    author.Service
	createBook *appbook.CreateBookUseCase
}

// NewAdminService 创建管理端服务并构建分发表
func NewAdminService(
	books book.Service,
	authors author.Service,
	enricher *appbook.EnrichBooksUseCase,
	createBook *appbook.CreateBookUseCase,
	events event.Publisher,
	logger *slog.Logger,
) *AdminService {
	s := &AdminService{
		books:      books,
		authors:    authors,
		createBook: createBook,
	}
	logger = logger.With("service", "admin")

	table := hook.NewBuilder().
		Register(hook.Before, hook.Books, hook.Create, logPayload(logger)).
		Register(hook.Before, hook.Books, hook.Update, logPayload(logger)).
		Register(hook.After, hook.Books, hook.Read, enrich(enricher)).
		Register(hook.Before, hook.Authors, hook.Create, logPayload(logger)).
		Register(hook.Before, hook.Authors, hook.Update, logPayload(logger)).
		Register(hook.After, hook.Authors, hook.Read, logResult(logger)).
		Register(hook.On, hook.Books, hook.CreateBook, s.onCreateBook).
		Register(hook.After, hook.Books, hook.Create, publish(events, logger, event.BookCreated)).
		Register(hook.After, hook.Books, hook.CreateBook, publish(events, logger, event.BookCreated)).
		Register(hook.After, hook.Books, hook.Update, publish(events, logger, event.BookUpdated)).
		Register(hook.After, hook.Authors, hook.Create, publish(events, logger, event.AuthorCreated)).
		Register(hook.After, hook.Authors, hook.Update, publish(events, logger, event.AuthorUpdated)).
		Build()

	s.dispatcher = hook.NewDispatcher("admin", table, logger)
	return s
}

// onCreateBook on Books.createBook
func (s *AdminService) onCreateBook(ctx context.Context, req *hook.Request) error {
	in, ok := req.Data.(appbook.CreateBookRequest)
	if !ok {
		return unexpectedPayload(req)
	}
	created, err := s.createBook.Execute(ctx, in)
	if err != nil {
		return err
	}
	req.Result = created
	return nil
}

// GetBook 读取单本图书(富化)
func (s *AdminService) GetBook(ctx context.Context, id uint, fields ...string) (*book.Book, error) {
	req := &hook.Request{Event: hook.Read, Target: hook.Books, ID: id, Query: hook.Query{Fields: fields}}
	return resultAs[*book.Book](s.dispatcher.Dispatch(ctx, req, readBooks(s.books)))
}

// ListBooks 分页读取图书(富化)
func (s *AdminService) ListBooks(ctx context.Context, q hook.Query) (*appbook.Page, error) {
	req := &hook.Request{Event: hook.Read, Target: hook.Books, Query: q}
	return resultAs[*appbook.Page](s.dispatcher.Dispatch(ctx, req, readBooks(s.books)))
}

// CreateBook 通用CREATE
func (s *AdminService) CreateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	req := &hook.Request{Event: hook.Create, Target: hook.Books, ID: b.ID, Data: b}
	return resultAs[*book.Book](s.dispatcher.Dispatch(ctx, req, createBooks(s.books)))
}

// UpdateBook 通用UPDATE
func (s *AdminService) UpdateBook(ctx context.Context, id uint, patch book.Patch) (*book.Book, error) {
	req := &hook.Request{Event: hook.Update, Target: hook.Books, ID: id, Data: patch}
	return resultAs[*book.Book](s.dispatcher.Dispatch(ctx, req, updateBooks(s.books)))
}

// CreateBookAction createBook动作:平铺输入,返回插入的嵌套记录
func (s *AdminService) CreateBookAction(ctx context.Context, in appbook.CreateBookRequest) (*book.Book, error) {
	req := &hook.Request{Event: hook.CreateBook, Target: hook.Books, ID: in.ID, Data: in}
	return resultAs[*book.Book](s.dispatcher.Dispatch(ctx, req, nil))
}

// GetAuthor 读取单个作者
func (s *AdminService) GetAuthor(ctx context.Context, id uint) (*author.Author, error) {
	req := &hook.Request{Event: hook.Read, Target: hook.Authors, ID: id}
	return resultAs[*author.Author](s.dispatcher.Dispatch(ctx, req, readAuthors(s.authors)))
}

// ListAuthors 分页读取作者
func (s *AdminService) ListAuthors(ctx context.Context, q hook.Query) (*AuthorPage, error) {
	req := &hook.Request{Event: hook.Read, Target: hook.Authors, Query: q}
	return resultAs[*AuthorPage](s.dispatcher.Dispatch(ctx, req, readAuthors(s.authors)))
}

// CreateAuthor 通用CREATE
func (s *AdminService) CreateAuthor(ctx context.Context, a *author.Author) (*author.Author, error) {
	req := &hook.Request{Event: hook.Create, Target: hook.Authors, ID: a.ID, Data: a}
	return resultAs[*author.Author](s.dispatcher.Dispatch(ctx, req, createAuthors(s.authors)))
}

// UpdateAuthor 通用UPDATE
func (s *AdminService) UpdateAuthor(ctx context.Context, id uint, patch author.Patch) (*author.Author, error) {
	req := &hook.Request{Event: hook.Update, Target: hook.Authors, ID: id, Data: patch}
	return resultAs[*author.Author](s.dispatcher.Dispatch(ctx, req, updateAuthors(s.authors)))
}
