//go:build wireinject
// +build wireinject

package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/application/service"
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/sqlstore"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
)

// infrastructureSet 数据库、提交记录、事件发布
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRecorder,
	providePublisher,
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	sqlstore.NewBookRepository,
	sqlstore.NewRatingRepository,
	sqlstore.NewAuthorRepository,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
	author.NewService,
)

// applicationSet 用例与分发服务
var applicationSet = wire.NewSet(
	provideEnricher,
	appbook.NewCreateBookUseCase,
	apporder.NewSubmitOrderUseCase,
	service.NewAdminService,
	service.NewCatalogService,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	handler.NewAdminHandler,
	handler.NewCatalogHandler,
)

// InitializeApp 由wire生成与buildApp等价的组装代码
// 运行 `wire gen ./cmd/bookshop` 生成wire_gen.go
func InitializeApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideRouter,
	)
	return nil, nil, nil
}
