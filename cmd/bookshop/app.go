package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/xiebiao/bookshop/docs"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/application/service"
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/event"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/rating"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/sqlstore"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/mq"
	"github.com/xiebiao/bookshop/pkg/response"
)

// buildApp 手动组装依赖
// 依赖链: Repository ← Service ← UseCase ← AdminService/CatalogService ← Handler
func buildApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gin.Engine, func(), error) {
	db, closeDB, err := provideDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	recorder, closeRecorder, err := provideRecorder(ctx, cfg, log)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	events, closeEvents, err := providePublisher(cfg, log)
	if err != nil {
		closeRecorder()
		closeDB()
		return nil, nil, err
	}
	cleanup := func() {
		closeEvents()
		closeRecorder()
		closeDB()
	}

	// 基础设施层
	bookRepo := sqlstore.NewBookRepository(db)
	ratingRepo := sqlstore.NewRatingRepository(db)
	authorRepo := sqlstore.NewAuthorRepository(db)

	// 领域层
	bookService := book.NewService(bookRepo)
	authorService := author.NewService(authorRepo)

	// 应用层
	enricher := provideEnricher(bookRepo, ratingRepo, cfg, log)
	admin := service.NewAdminService(bookService, authorService, enricher,
		appbook.NewCreateBookUseCase(bookService), events, log)
	catalog := service.NewCatalogService(bookService, enricher,
		apporder.NewSubmitOrderUseCase(recorder, log), events, log)

	// 接口层
	router := provideRouter(cfg, log, handler.NewAdminHandler(admin), handler.NewCatalogHandler(catalog))
	return router, cleanup, nil
}

// provideDB 连接数据库,auto_migrate开启时同步表结构
func provideDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, func(), error) {
	db, err := sqlstore.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := sqlstore.Migrate(db); err != nil {
			_ = sqlstore.Close(db)
			return nil, nil, err
		}
		log.Info("database migrated")
	}
	return db, func() {
		if err := sqlstore.Close(db); err != nil {
			log.Warn("close database failed", "error", err)
		}
	}, nil
}

// provideRecorder 未启用Redis时只写日志
func provideRecorder(ctx context.Context, cfg *config.Config, log *slog.Logger) (order.Recorder, func(), error) {
	if !cfg.Redis.Enabled {
		return redis.NewLogRecorder(log), func() {}, nil
	}
	client, err := redis.NewClient(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	stream := redis.NewSubmissionStream(client, cfg.Redis.StreamKey, cfg.Redis.StreamMaxLen)
	return stream, func() { _ = client.Close() }, nil
}

// providePublisher 未配置MQ时不发布事件
func providePublisher(cfg *config.Config, log *slog.Logger) (event.Publisher, func(), error) {
	if !cfg.MQ.Enabled() {
		log.Info("mq disabled, lifecycle events are dropped")
		return event.NopPublisher{}, func() {}, nil
	}
	publisher, err := mq.Dial(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, cfg.MQ.AppID)
	if err != nil {
		return nil, nil, err
	}
	log.Info("mq connected", "exchange", cfg.MQ.Exchange)
	return messaging.NewEventPublisher(publisher, cfg.MQ), func() { _ = publisher.Close() }, nil
}

func provideEnricher(books book.Repository, ratings rating.Repository, cfg *config.Config, log *slog.Logger) *appbook.EnrichBooksUseCase {
	return appbook.NewEnrichBooksUseCase(books, ratings, cfg.Enrich.Concurrency, log)
}

// provideRouter 创建Gin引擎并注册路由
// 中间件顺序: Recovery → RequestLogger → Tracing → Metrics → Handler
func provideRouter(cfg *config.Config, log *slog.Logger, admin *handler.AdminHandler, catalog *handler.CatalogHandler) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	admin.Register(v1.Group("/admin"))
	catalog.Register(v1.Group("/catalog"))

	return r
}
