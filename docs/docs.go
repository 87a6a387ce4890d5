// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with `swag init -g api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT License"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "description": "Challenge the server for a match",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "An ancient game",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PingResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate the operator and return a JWT token",
                "parameters": [
                    {"description": "username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Authentication disabled", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/products": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "A new product record is created with the name, SKU, and initial stock",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Creates a product",
                "parameters": [
                    {"description": "The new product data", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "SKU already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Invalid product data", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/products/{sku}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by SKU",
                "parameters": [
                    {"type": "string", "description": "The product SKU identifier", "name": "sku", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/inventories/low-stock": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "List low-stock products",
                "parameters": [
                    {"type": "integer", "description": "Stock level below which a product is listed (default 10)", "name": "threshold", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}}},
                    "400": {"description": "Invalid threshold", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/inventories/summary": {
            "get": {
                "description": "Totals over every product and stock movement",
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Inventory summary",
                "parameters": [
                    {"type": "integer", "description": "Stock level below which a product counts as low (default 10)", "name": "threshold", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SummaryResponse"}},
                    "400": {"description": "Invalid threshold", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/inventories/product/{sku}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "The requested product stock gets increased by a specified quantity",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Adds stock to a product",
                "parameters": [
                    {"type": "string", "description": "The product SKU identifier", "name": "sku", "in": "path", "required": true},
                    {"description": "The product data to update", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StockAdditionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "404": {"description": "SKU not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Invalid quantity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/inventories/product/{sku}/movements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Get product movement logs",
                "parameters": [
                    {"type": "string", "description": "The product SKU identifier", "name": "sku", "in": "path", "required": true},
                    {"type": "integer", "description": "Offset for pagination", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Limit for pagination", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MovementsSearchResult"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "SKU not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/orders": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "For each product requested, the SKU and quantity to remove from stock are specified",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Orders a list of products",
                "parameters": [
                    {"description": "The products' order data", "name": "products", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.OrderItemRequest"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}}},
                    "404": {"description": "SKU not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Invalid order or insufficient stock", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CredentialsRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"detail": {}}
        },
        "handlers.LoginResult": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handlers.Meta": {
            "type": "object",
            "properties": {"total_count": {"type": "integer"}}
        },
        "handlers.MostMovedProductResponse": {
            "type": "object",
            "properties": {"movement_count": {"type": "integer"}, "name": {"type": "string"}, "sku": {"type": "string"}}
        },
        "handlers.MovementResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "delta": {"type": "integer"},
                "id": {"type": "integer"},
                "product_id": {"type": "integer"}
            }
        },
        "handlers.MovementsSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.MovementResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.OrderItemRequest": {
            "type": "object",
            "properties": {"quantity": {"type": "integer"}, "sku": {"type": "string"}}
        },
        "handlers.PingResponse": {
            "type": "object",
            "properties": {"msg": {"type": "string"}}
        },
        "handlers.ProductRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "sku": {"type": "string"}, "stock": {"type": "integer"}}
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "sku": {"type": "string"},
                "stock": {"type": "integer"}
            }
        },
        "handlers.StockAdditionRequest": {
            "type": "object",
            "properties": {"quantity": {"type": "integer"}}
        },
        "handlers.SummaryResponse": {
            "type": "object",
            "properties": {
                "low_stock_count": {"type": "integer"},
                "most_moved_product": {"$ref": "#/definitions/handlers.MostMovedProductResponse"},
                "threshold": {"type": "integer"},
                "total_movements": {"type": "integer"},
                "total_products": {"type": "integer"},
                "total_units": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Products MSV",
	Description:      "Product management API: add products, update stocks, and place orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
