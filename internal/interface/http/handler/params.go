package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/application/hook"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// pathID 解析路径参数:id,失败时直接写错误响应
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: 无效的ID "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}

// bindJSON 绑定请求体,失败时直接写错误响应
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数格式错误: "+err.Error())
		return false
	}
	return true
}

// listQuery 解析分页与投影参数
func listQuery(c *gin.Context) (hook.Query, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数格式错误: "+err.Error())
		return hook.Query{}, false
	}
	return hook.Query{Page: q.Page, PageSize: q.PageSize, Fields: q.Fields()}, true
}
