package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/application/service"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// CatalogHandler 目录服务HTTP处理器
// 读取接口返回富化后的图书(stockCriticality、averageRating)
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler 创建目录服务处理器
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Register 注册路由
func (h *CatalogHandler) Register(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
	}
	rg.POST("/submitOrder", h.SubmitOrder)
}

// ListBooks 图书列表(富化)
// @Summary      图书列表
// @Description  返回按ID排序的图书,每本附带库存紧张程度与平均评分
// @Tags         目录
// @Produce      json
// @Param        page      query int    false "页码"
// @Param        page_size query int    false "每页数量"
// @Param        select    query string false "投影字段,逗号分隔"
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.EnrichedBookResponse}}
// @Failure      200 {object} response.Response "50003 查询图书附加数据失败"
// @Router       /api/v1/catalog/books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}

	page, err := h.catalog.ListBooks(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewEnrichedBookList(page.Books, q.Fields...), page.Total, page.Page, page.PageSize)
}

// GetBook 图书详情(富化)
// @Summary      图书详情
// @Tags         目录
// @Produce      json
// @Param        id     path  int    true  "图书ID"
// @Param        select query string false "投影字段,逗号分隔"
// @Success      200 {object} response.Response{data=dto.EnrichedBookResponse}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/catalog/books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fields := dto.SplitFields(c.Query("select"))
	b, err := h.catalog.GetBook(c.Request.Context(), id, fields...)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewEnrichedBookResponse(b, fields...))
}

// CreateBook 新增图书
// @Summary      新增图书
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Router       /api/v1/catalog/books [post]
func (h *CatalogHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.catalog.CreateBook(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        id      path int                   true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Router       /api/v1/catalog/books/{id} [put]
func (h *CatalogHandler) UpdateBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.catalog.UpdateBook(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// SubmitOrder submitOrder动作
// @Summary      submitOrder
// @Description  记录一次下单调用,不校验负载,不修改库存
// @Tags         目录
// @Accept       json
// @Produce      json
// @Param        request body dto.SubmitOrderRequest true "下单信息"
// @Success      200 {object} response.Response{data=dto.SubmitOrderResponse}
// @Router       /api/v1/catalog/submitOrder [post]
func (h *CatalogHandler) SubmitOrder(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.catalog.SubmitOrder(c.Request.Context(), req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewSubmitOrderResponse(s))
}
