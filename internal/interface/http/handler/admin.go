package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/application/service"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AdminHandler 管理服务HTTP处理器
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler 创建管理服务处理器
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Register 注册路由
func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.POST("/createBook", h.CreateBookAction)
	}

	authors := rg.Group("/authors")
	{
		authors.GET("", h.ListAuthors)
		authors.GET("/:id", h.GetAuthor)
		authors.POST("", h.CreateAuthor)
		authors.PUT("/:id", h.UpdateAuthor)
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Tags         管理-图书
// @Produce      json
// @Param        page      query int    false "页码"
// @Param        page_size query int    false "每页数量"
// @Param        select    query string false "投影字段,逗号分隔"
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.EnrichedBookResponse}}
// @Router       /api/v1/admin/books [get]
func (h *AdminHandler) ListBooks(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}

	page, err := h.admin.ListBooks(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewEnrichedBookList(page.Books, q.Fields...), page.Total, page.Page, page.PageSize)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         管理-图书
// @Produce      json
// @Param        id     path  int    true  "图书ID"
// @Param        select query string false "投影字段,逗号分隔"
// @Success      200 {object} response.Response{data=dto.EnrichedBookResponse}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/admin/books/{id} [get]
func (h *AdminHandler) GetBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fields := dto.SplitFields(c.Query("select"))
	b, err := h.admin.GetBook(c.Request.Context(), id, fields...)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewEnrichedBookResponse(b, fields...))
}

// CreateBook 新增图书
// @Summary      新增图书
// @Tags         管理-图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40009 图书ID已存在"
// @Router       /api/v1/admin/books [post]
func (h *AdminHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.admin.CreateBook(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Tags         管理-图书
// @Accept       json
// @Produce      json
// @Param        id      path int                   true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Router       /api/v1/admin/books/{id} [put]
func (h *AdminHandler) UpdateBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.admin.UpdateBook(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// CreateBookAction createBook动作
// @Summary      createBook
// @Description  以平铺参数创建图书,返回新记录
// @Tags         管理-图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookActionRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Router       /api/v1/admin/books/createBook [post]
func (h *AdminHandler) CreateBookAction(c *gin.Context) {
	var req dto.CreateBookActionRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.admin.CreateBookAction(c.Request.Context(), req.ToUseCase())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         管理-作者
// @Produce      json
// @Param        page      query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.AuthorResponse}}
// @Router       /api/v1/admin/authors [get]
func (h *AdminHandler) ListAuthors(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}

	page, err := h.admin.ListAuthors(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewAuthorList(page.Authors), page.Total, page.Page, page.PageSize)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         管理-作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Router       /api/v1/admin/authors/{id} [get]
func (h *AdminHandler) GetAuthor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.admin.GetAuthor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponse(a))
}

// CreateAuthor 新增作者
// @Summary      新增作者
// @Tags         管理-作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Router       /api/v1/admin/authors [post]
func (h *AdminHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.admin.CreateAuthor(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponse(a))
}

// UpdateAuthor 更新作者
// @Summary      更新作者
// @Tags         管理-作者
// @Accept       json
// @Produce      json
// @Param        id      path int                     true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Router       /api/v1/admin/authors/{id} [put]
func (h *AdminHandler) UpdateAuthor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.admin.UpdateAuthor(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponse(a))
}
