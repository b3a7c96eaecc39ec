// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go -o internal/docs`.
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
        "/register": {
            "post": {
                "description": "Create an account. The response never contains password material.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "User registered", "schema": {"$ref": "#/definitions/handlers.UserResponse"}},
                    "400": {"description": "Invalid input or email already exists", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Verify credentials and issue a bearer token. Unknown email and wrong password return the same error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "User credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Invalid input or credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the authenticated user's transactions, most recent first",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "responses": {
                    "200": {"description": "Transactions", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}},
                    "401": {"description": "Missing token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Record an income or expense. The date defaults to now.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [
                    {"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Stored transaction", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Missing token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Filter transactions by month (0-11, or \"all\") and year, with totals",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Transaction history",
                "parameters": [
                    {"type": "string", "description": "Month 0-11 or all (default all)", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Year (default current year)", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "History", "schema": {"$ref": "#/definitions/budget.HistoryResult"}},
                    "400": {"description": "Invalid period", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Missing token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Delete a transaction owned by the authenticated user. Another user's transaction is reported as not found.",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "parameters": [
                    {"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Transaction deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "401": {"description": "Missing token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found or not authorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/budgets/status": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Compare the user's expenses against per-category limits",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Budget status",
                "parameters": [
                    {"description": "Bucket limits", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/handlers.BudgetStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Status per bucket", "schema": {"$ref": "#/definitions/handlers.BudgetStatusResponse"}},
                    "400": {"description": "Invalid bucket configuration", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Missing token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/insights": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Classify the user's all-time income and expenses into a short assessment",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Financial insight",
                "responses": {
                    "200": {"description": "Insight", "schema": {"$ref": "#/definitions/insight.Result"}},
                    "401": {"description": "Missing token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "budget.Bucket": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "food"},
                "limit": {"type": "number", "example": 5000}
            }
        },
        "budget.Status": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "limit": {"type": "number"},
                "spent": {"type": "number"},
                "remaining": {"type": "number"},
                "percentage": {"type": "number"},
                "band": {"type": "string", "enum": ["nominal", "warning", "critical"]},
                "over_limit": {"type": "boolean"}
            }
        },
        "budget.Period": {
            "type": "object",
            "properties": {
                "month": {"type": "integer", "description": "0-11, or -1 for all months"},
                "year": {"type": "integer"}
            }
        },
        "budget.HistoryResult": {
            "type": "object",
            "properties": {
                "period": {"$ref": "#/definitions/budget.Period"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "total_expense": {"type": "number"},
                "total_income": {"type": "number"},
                "count": {"type": "integer"}
            }
        },
        "handlers.BudgetStatusRequest": {
            "type": "object",
            "properties": {
                "buckets": {"type": "array", "items": {"$ref": "#/definitions/budget.Bucket"}}
            }
        },
        "handlers.BudgetStatusResponse": {
            "type": "object",
            "properties": {
                "buckets": {"type": "array", "items": {"$ref": "#/definitions/budget.Status"}}
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["amount", "type"],
            "properties": {
                "description": {"type": "string", "maxLength": 500, "example": "Groceries"},
                "amount": {"type": "number", "example": 1250.5},
                "type": {"type": "string", "enum": ["income", "expense"], "example": "expense"},
                "category": {"type": "string", "example": "food"},
                "date": {"type": "string", "example": "2024-03-01"}
            }
        },
        "handlers.CredentialsRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "maxLength": 255, "example": "alice@example.com"},
                "password": {"type": "string", "maxLength": 72, "example": "correct-horse"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Deleted"}
            }
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "insight.Result": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "message": {"type": "string"},
                "severity": {"type": "string", "enum": ["info", "nominal", "warning", "critical"]},
                "total_income": {"type": "number"},
                "total_expense": {"type": "number"},
                "savings_rate": {"type": "number"},
                "overage": {"type": "number"},
                "discretionary": {"type": "number"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "category": {"type": "string"},
                "date": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Ledger API",
	Description:      "Personal finance ledger: authenticated transactions, budget status and spending insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
