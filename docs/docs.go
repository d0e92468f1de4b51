// Package docs swagger文档
// 由 `swag init -g cmd/bookshop/main.go` 根据handler注解重新生成
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/admin/books": {
            "get": {"produces": ["application/json"], "tags": ["管理-图书"], "summary": "图书列表",
                "parameters": [
                    {"type": "integer", "description": "页码", "name": "page", "in": "query"},
                    {"type": "integer", "description": "每页数量", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "投影字段,逗号分隔", "name": "select", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["管理-图书"], "summary": "新增图书",
                "parameters": [{"description": "图书信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateBookRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/admin/books/createBook": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["管理-图书"], "summary": "createBook",
                "parameters": [{"description": "图书信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateBookActionRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/admin/books/{id}": {
            "get": {"produces": ["application/json"], "tags": ["管理-图书"], "summary": "图书详情",
                "parameters": [{"type": "integer", "description": "图书ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["管理-图书"], "summary": "更新图书",
                "parameters": [
                    {"type": "integer", "description": "图书ID", "name": "id", "in": "path", "required": true},
                    {"description": "更新字段", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateBookRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/admin/authors": {
            "get": {"produces": ["application/json"], "tags": ["管理-作者"], "summary": "作者列表",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["管理-作者"], "summary": "新增作者",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/admin/authors/{id}": {
            "get": {"produces": ["application/json"], "tags": ["管理-作者"], "summary": "作者详情",
                "parameters": [{"type": "integer", "description": "作者ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["管理-作者"], "summary": "更新作者",
                "parameters": [{"type": "integer", "description": "作者ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/catalog/books": {
            "get": {"produces": ["application/json"], "tags": ["目录"], "summary": "图书列表",
                "description": "返回按ID排序的图书,每本附带库存紧张程度与平均评分",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["目录"], "summary": "新增图书",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/catalog/books/{id}": {
            "get": {"produces": ["application/json"], "tags": ["目录"], "summary": "图书详情",
                "parameters": [{"type": "integer", "description": "图书ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["目录"], "summary": "更新图书",
                "parameters": [{"type": "integer", "description": "图书ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/v1/catalog/submitOrder": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["目录"], "summary": "submitOrder",
                "description": "记录一次下单调用,不校验负载,不修改库存",
                "parameters": [{"description": "下单信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitOrderRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dto.CreateBookActionRequest": {
            "type": "object",
            "properties": {
                "ID": {"type": "integer", "example": 201},
                "title": {"type": "string", "example": "Wuthering Heights"},
                "descr": {"type": "string"},
                "author": {"type": "integer", "example": 101},
                "genre": {"type": "integer", "example": 11},
                "stock": {"type": "integer", "example": 12},
                "price": {"type": "number", "example": 11.11},
                "currency": {"type": "string", "example": "GBP"}
            }
        },
        "dto.CreateBookRequest": {
            "type": "object",
            "properties": {
                "ID": {"type": "integer", "example": 201},
                "title": {"type": "string"},
                "descr": {"type": "string"},
                "author": {"type": "object", "properties": {"ID": {"type": "integer"}}},
                "genre": {"type": "object", "properties": {"ID": {"type": "integer"}}},
                "stock": {"type": "integer"},
                "price": {"type": "number"},
                "currency": {"type": "object", "properties": {"code": {"type": "string"}}}
            }
        },
        "dto.UpdateBookRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "descr": {"type": "string"},
                "stock": {"type": "integer"},
                "price": {"type": "number"}
            }
        },
        "dto.SubmitOrderRequest": {
            "type": "object",
            "properties": {
                "book": {"type": "integer", "example": 201},
                "quantity": {"type": "integer", "example": 5}
            }
        },
        "dto.SubmitOrderResponse": {
            "type": "object",
            "properties": {
                "submission_no": {"type": "string", "example": "SUB1767240000123456"},
                "book": {"type": "integer", "example": 201},
                "quantity": {"type": "integer", "example": 5},
                "submitted_at": {"type": "string", "example": "2026-01-01 12:00:00"}
            }
        }
    }
}`

// SwaggerInfo 文档元信息
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookshop API",
	Description:      "图书目录服务:管理端维护图书与作者,读者端读取富化后的图书并提交订单",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
