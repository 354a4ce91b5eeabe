// Package docs регистрирует описание API для swagger UI.
// Держать в соответствии с аннотациями в internal/handlers.
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
        "/articles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Список всех статей",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ArticleDto"}}
                    }
                }
            },
            "post": {
                "description": "Создаёт статью из title/content/writer; id во входящем теле игнорируется",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Создать статью",
                "parameters": [
                    {
                        "description": "Данные статьи",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ArticleDto"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArticleDto"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/articles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Получить статью по ID",
                "parameters": [
                    {"type": "integer", "description": "ID статьи", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArticleDto"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Не найдено, тело пустое", "schema": {"type": "string"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Обновить статью",
                "parameters": [
                    {"type": "integer", "description": "ID статьи", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Новые title/content/writer",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ArticleDto"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArticleDto"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Не найдено, тело пустое", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["articles"],
                "summary": "Удалить статью",
                "parameters": [
                    {"type": "integer", "description": "ID статьи", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Удалено, тело пустое", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Не найдено, тело пустое", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Проверка живости и доступности БД",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/query-example": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["query"],
                "summary": "Пример разбора query-параметров",
                "parameters": [
                    {"type": "string", "description": "Обязательная строка", "name": "query", "in": "query", "required": true},
                    {"type": "integer", "description": "Обязательное целое", "name": "limit", "in": "query", "required": true},
                    {"type": "string", "description": "Необязательная строка", "name": "notReq", "in": "query"},
                    {"type": "string", "default": "hello", "description": "Строка со значением по умолчанию", "name": "default", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "done", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/query-page": {
            "get": {
                "description": "Последовательно вызывает три варианта пагинации, возвращает результат последнего. page — номер страницы с нуля.",
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "Пагинация статей",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Номер страницы (с 0)", "name": "page", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 25, "description": "Размер страницы", "name": "perpage", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.Page-dto_ArticleDto"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/query-scroll": {
            "get": {
                "description": "20 статей с id меньше before, новые первыми. Без before — последние 20.",
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "Infinite scroll по курсору",
                "parameters": [
                    {"type": "integer", "description": "Последний увиденный id", "name": "before", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ArticleDto"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/query-search": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["query"],
                "summary": "Пример поискового запроса",
                "parameters": [
                    {"type": "string", "description": "Ключевое слово", "name": "q", "in": "query", "required": true},
                    {"type": "string", "default": "title", "description": "Поле поиска", "name": "cat", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "done", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ArticleDto": {
            "type": "object",
            "properties": {
                "content": {"type": "string", "example": "Текст статьи"},
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Первая статья"},
                "writer": {"type": "string", "example": "alex"}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "pagination.Page-dto_ArticleDto": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/dto.ArticleDto"}},
                "empty": {"type": "boolean"},
                "first": {"type": "boolean"},
                "last": {"type": "boolean"},
                "number": {"type": "integer"},
                "numberOfElements": {"type": "integer"},
                "size": {"type": "integer"},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Articles API",
	Description:      "CRUD статей, разбор query-параметров и пагинация.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
