package service

import (
	"context"
	"sort"
	"sync"

	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/event"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/rating"
)

// bookStore 内存记录存储
type bookStore struct {
	mu       sync.Mutex
	books    map[uint]*book.Book
	stockErr error
	lookups  int
}

func newBookStore(books ...*book.Book) *bookStore {
	s := &bookStore{books: make(map[uint]*book.Book)}
	for _, b := range books {
		s.books[b.ID] = b
	}
	return s
}

// copyOf 模拟从存储读出的新副本
func copyOf(b *book.Book) *book.Book {
	c := *b
	if b.Stock != nil {
		stock := *b.Stock
		c.Stock = &stock
	}
	return &c
}

func (s *bookStore) Create(_ context.Context, b *book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[b.ID]; ok {
		return book.ErrBookDuplicate
	}
	s.books[b.ID] = copyOf(b)
	return nil
}

func (s *bookStore) FindByID(_ context.Context, id uint, fields ...string) (*book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	c := copyOf(b)
	if len(fields) > 0 && !contains(fields, "stock") {
		c.Stock = nil
	}
	return c, nil
}

func (s *bookStore) FindStock(_ context.Context, id uint) (*int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if s.stockErr != nil {
		return nil, s.stockErr
	}
	b, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return copyOf(b).Stock, nil
}

func (s *bookStore) Update(_ context.Context, b *book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[b.ID] = copyOf(b)
	return nil
}

func (s *bookStore) List(_ context.Context, p book.ListParams) ([]*book.Book, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.books))
	for id := range s.books {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	out := make([]*book.Book, 0, len(ids))
	for _, id := range ids {
		c := copyOf(s.books[uint(id)])
		if len(p.Fields) > 0 && !contains(p.Fields, "stock") {
			c.Stock = nil
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ratingStore 内存评分存储
type ratingStore struct {
	ratings map[uint][]int
	err     error
}

func (s *ratingStore) ListByBookID(_ context.Context, bookID uint) ([]*rating.Rating, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*rating.Rating, 0)
	for _, stars := range s.ratings[bookID] {
		out = append(out, &rating.Rating{BookID: bookID, Stars: stars})
	}
	return out, nil
}

// authorStore 内存作者存储
type authorStore struct {
	authors map[uint]*author.Author
}

func (s *authorStore) Create(_ context.Context, a *author.Author) error {
	s.authors[a.ID] = a
	return nil
}

func (s *authorStore) FindByID(_ context.Context, id uint) (*author.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	c := *a
	return &c, nil
}

func (s *authorStore) Update(_ context.Context, a *author.Author) error {
	s.authors[a.ID] = a
	return nil
}

func (s *authorStore) List(_ context.Context, _, _ int) ([]*author.Author, int64, error) {
	out := make([]*author.Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

// eventSink 记录发布的事件
type eventSink struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (s *eventSink) Publish(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *eventSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}

// submissionLog 记录订单提交
type submissionLog struct {
	mu          sync.Mutex
	submissions []*order.Submission
}

func (l *submissionLog) Record(_ context.Context, s *order.Submission) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.submissions = append(l.submissions, s)
	return nil
}
