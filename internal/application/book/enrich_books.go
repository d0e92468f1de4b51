package book

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/rating"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

const tracerName = "application/book"

// Page 分页读取的结果
type Page struct {
	Books    []*book.Book
	Total    int64
	Page     int
	PageSize int
}

// EnrichBooksUseCase 图书读取后的富化
// 设计说明:
// 1. 每本书计算 StockCriticality 和 AverageRating,只修改内存中的记录
// 2. 记录缺少stock时按ID点查记录存储,不做缓存
// 3. 每本书单独查询评分存储
// 4. 任一查询失败整批中止,不返回部分富化结果
// 5. concurrency>1时并行查询,输出顺序与输入一致
// 6. 列表中的nil元素原样保留,不做查询
type EnrichBooksUseCase struct {
	bookRepo    book.Repository
	ratingRepo  rating.Repository
	concurrency int
	logger      *slog.Logger
}

// NewEnrichBooksUseCase 创建富化用例
func NewEnrichBooksUseCase(bookRepo book.Repository, ratingRepo rating.Repository, concurrency int, logger *slog.Logger) *EnrichBooksUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &EnrichBooksUseCase{
		bookRepo:    bookRepo,
		ratingRepo:  ratingRepo,
		concurrency: concurrency,
		logger:      logger,
	}
}

// derived 一本书的派生字段
type derived struct {
	criticality book.Criticality
	average     *decimal.Decimal
}

// Execute 富化一次读取的结果,保持原有形状
// 单条记录返回单条记录,列表返回同长度同顺序的列表
func (uc *EnrichBooksUseCase) Execute(ctx context.Context, result any) (any, error) {
	switch v := result.(type) {
	case nil:
		return nil, nil
	case *book.Book:
		if v == nil {
			return v, nil
		}
		if err := uc.EnrichAll(ctx, []*book.Book{v}); err != nil {
			return nil, err
		}
		return v, nil
	case []*book.Book:
		if err := uc.EnrichAll(ctx, v); err != nil {
			return nil, err
		}
		return v, nil
	case *Page:
		if err := uc.EnrichAll(ctx, v.Books); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, apperrors.Wrapf(nil, "不支持富化的读取结果类型 %T", result)
	}
}

// EnrichAll 富化一批图书
// 全部查询成功后才写入派生字段
func (uc *EnrichBooksUseCase) EnrichAll(ctx context.Context, books []*book.Book) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "EnrichBooks")
	span.SetAttributes(attribute.Int("books.count", len(books)))
	start := time.Now()
	defer func() {
		tracing.EndSpan(span, err)
		metrics.IncCounterVec(metrics.EnrichmentBatchesTotal, prometheus.Labels{"result": metrics.Result(err)})
		metrics.ObserveHistogram(metrics.EnrichmentBatchSize, float64(len(books)))
		metrics.ObserveHistogram(metrics.EnrichmentDuration, time.Since(start).Seconds())
	}()

	if len(books) == 0 {
		return nil
	}

	values := make([]derived, len(books))
	if uc.concurrency == 1 || len(books) == 1 {
		for i, b := range books {
			if b == nil {
				continue
			}
			d, err := uc.derive(ctx, b)
			if err != nil {
				return err
			}
			values[i] = d
		}
	} else if err := uc.deriveParallel(ctx, books, values); err != nil {
		return err
	}

	for i, b := range books {
		if b == nil {
			continue
		}
		b.StockCriticality = values[i].criticality
		b.AverageRating = values[i].average
	}
	return nil
}

// deriveParallel 并行计算派生字段
// 所有查询结束后返回输入顺序中最靠前的错误,与逐本查询时一致
func (uc *EnrichBooksUseCase) deriveParallel(ctx context.Context, books []*book.Book, values []derived) error {
	errs := make([]error, len(books))

	var g errgroup.Group
	g.SetLimit(uc.concurrency)
	for i, b := range books {
		if b == nil {
			continue
		}
		g.Go(func() error {
			values[i], errs[i] = uc.derive(ctx, b)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// derive 计算一本书的派生字段
func (uc *EnrichBooksUseCase) derive(ctx context.Context, b *book.Book) (derived, error) {
	var d derived

	// 1. 库存:记录中缺失时点查
	stock := b.Stock
	if !b.HasStock() {
		hydrated, err := uc.bookRepo.FindStock(ctx, b.ID)
		uc.countLookup("stock", err)
		if err != nil {
			return d, apperrors.WrapAs(book.ErrStoreLookup, fmt.Errorf("hydrate stock of book %d: %w", b.ID, err))
		}
		stock = hydrated
	}
	if stock != nil {
		d.criticality = book.ClassifyStock(*stock)
		if book.InUnmappedBand(*stock) {
			uc.logger.DebugContext(ctx, "stock in unmapped band, using default criticality",
				"book_id", b.ID, "stock", *stock, "criticality", d.criticality)
		}
	}

	// 2. 平均评分:每本书单独查询
	ratings, err := uc.ratingRepo.ListByBookID(ctx, b.ID)
	uc.countLookup("rating", err)
	if err != nil {
		return d, apperrors.WrapAs(book.ErrStoreLookup, fmt.Errorf("query ratings of book %d: %w", b.ID, err))
	}
	d.average = rating.Average(ratings)

	return d, nil
}

func (uc *EnrichBooksUseCase) countLookup(store string, err error) {
	metrics.IncCounterVec(metrics.StoreLookupsTotal, prometheus.Labels{"store": store, "result": metrics.Result(err)})
}
