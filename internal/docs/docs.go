// Package docs holds the Swagger document of the notebook API. It has the shape
//
//	swag init -d ./internal/service,./internal/model -g service.go -o internal/docs
//
// generates from the annotations on the handlers in internal/service and must be kept in step
// with them.
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
        "/notebook/": {
            "get": {
                "description": "Lists notebooks in insertion order. Missing or invalid paging parameters fall back to page 1 and 10 entries per page.",
                "produces": ["application/json"],
                "tags": ["Notebook"],
                "summary": "List notebooks",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number, starting at 1", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Entries per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Notebook"}}}
                }
            },
            "post": {
                "description": "Creates a notebook. full_name, phone and email are required; the first missing one is reported.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Notebook"],
                "summary": "Create notebook",
                "parameters": [
                    {"description": "Notebook fields", "name": "notebook", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Notebook"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Notebook"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/notebook/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Notebook"],
                "summary": "Get notebook",
                "parameters": [
                    {"type": "integer", "description": "Notebook id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Notebook"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Replaces every field of a notebook and echoes the submitted record. An unknown id is not an error.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Notebook"],
                "summary": "Update notebook",
                "parameters": [
                    {"type": "integer", "description": "Notebook id", "name": "id", "in": "path", "required": true},
                    {"description": "Notebook fields", "name": "notebook", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Notebook"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Notebook"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes a notebook. An unknown id is not an error.",
                "produces": ["application/json"],
                "tags": ["Notebook"],
                "summary": "Delete notebook",
                "parameters": [
                    {"type": "integer", "description": "Notebook id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}}
                }
            }
        },
        "/docs/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Docs"],
                "summary": "API description",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "The field 'email' is required."},
                "details": {"type": "string"}
            }
        },
        "model.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Notebook deleted successfully"}
            }
        },
        "model.Notebook": {
            "type": "object",
            "required": ["full_name", "phone", "email"],
            "properties": {
                "id": {"type": "integer", "readOnly": true},
                "full_name": {"type": "string", "example": "Erika Mustermann"},
                "company": {"type": "string"},
                "phone": {"type": "string", "example": "+49 0815 4711"},
                "email": {"type": "string", "example": "erika@example.org"},
                "birth_date": {"type": "string", "example": "1969-03-02"},
                "photo": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Notebook API",
	Description:      "CRUD service for notebook contacts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
