// Package docs holds the Swagger 2.0 document served under /swagger. It is
// written by hand to match the swag annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/calculators/education": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "Education calculator",
                "parameters": [
                    {"description": "Education goal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/finance.EducationInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/finance.EducationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/calculators/emi": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "EMI calculator",
                "parameters": [
                    {"description": "Loan terms", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/finance.EMIInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/finance.EMIResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/calculators/retirement": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "Retirement calculator",
                "parameters": [
                    {"description": "Retirement goal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/finance.RetirementInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/finance.RetirementResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/calculators/sip": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "SIP calculator",
                "parameters": [
                    {"description": "SIP terms", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/finance.SIPInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/finance.SIPResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Ask the assistant",
                "parameters": [
                    {"description": "Chat message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/investments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "List investments",
                "parameters": [
                    {"type": "string", "description": "Investor email", "name": "email", "in": "query", "required": true},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.PageResponse-models_Investment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Record investment",
                "parameters": [
                    {"description": "Investment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateInvestmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/mutual-funds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["mutual-funds"],
                "summary": "List mutual funds",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "search", "in": "query"},
                    {"type": "string", "description": "Category", "name": "category", "in": "query"},
                    {"type": "string", "description": "Sort key", "name": "sort_by", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.FundList"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/mutual-funds/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["mutual-funds"],
                "summary": "Get mutual fund",
                "parameters": [
                    {"type": "string", "description": "Scheme code", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.FundDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/news": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Market news",
                "parameters": [
                    {"type": "string", "description": "markets, stocks, economy, tech or all", "name": "category", "in": "query"},
                    {"type": "string", "description": "Search text", "name": "search", "in": "query"},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.PageResponse-marketdata_Article"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Get portfolio",
                "parameters": [
                    {"type": "string", "description": "Investor email", "name": "email", "in": "query", "required": true},
                    {"type": "string", "description": "Sort key", "name": "sort_by", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.PortfolioView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/predictions/symbols": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Predictable symbols",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}}
                }
            }
        },
        "/predictions/{symbol}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Predict stock price",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "symbol", "in": "path", "required": true},
                    {"type": "string", "description": "1d, 1w or 1m (default 1m)", "name": "timeframe", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/prediction.Prediction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/predictions/{symbol}/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Prediction history",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "symbol", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.StockPrediction"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/stocks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "List stocks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.PageResponse-marketdata_StockQuote"}}
                }
            }
        },
        "/stocks/indices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Market indices",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/stocks/{symbol}/details": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Stock details",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "symbol", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/marketdata.StockDetails"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/stocks/{symbol}/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Stock price history",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "symbol", "in": "path", "required": true},
                    {"type": "string", "description": "1d, 5d, 1mo, 6mo, ytd, 1y, 5y or max (default 5d)", "name": "period", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/marketdata.Chart"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "email": {"type": "string"},
                "message": {"type": "string", "maxLength": 4000}
            }
        },
        "handlers.ChatResponse": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"}
            }
        },
        "handlers.CreateInvestmentRequest": {
            "type": "object",
            "required": ["amount", "email", "entry_nav", "fund_id", "investment_type", "name"],
            "properties": {
                "amount": {"type": "number"},
                "category": {"type": "string"},
                "email": {"type": "string"},
                "entry_nav": {"type": "number"},
                "fund_id": {"type": "string"},
                "investment_type": {"type": "string", "enum": ["sip", "one-time"]},
                "name": {"type": "string"},
                "payment_mode": {"type": "string", "enum": ["upi", "wallet", "netbanking", "debitcard"]},
                "risk_level": {"type": "string"},
                "sip_day": {"type": "integer", "maximum": 30, "minimum": 1}
            }
        },
        "finance.SIPInput": {
            "type": "object",
            "properties": {
                "monthly_amount": {"type": "number"},
                "years": {"type": "number"},
                "annual_rate_percent": {"type": "number"}
            }
        },
        "finance.SIPResult": {"type": "object", "additionalProperties": true},
        "finance.EMIInput": {
            "type": "object",
            "properties": {
                "principal": {"type": "number"},
                "annual_rate_percent": {"type": "number"},
                "years": {"type": "number"}
            }
        },
        "finance.EMIResult": {"type": "object", "additionalProperties": true},
        "finance.RetirementInput": {
            "type": "object",
            "properties": {
                "current_age": {"type": "integer"},
                "retirement_age": {"type": "integer"},
                "monthly_expenses": {"type": "number"},
                "annual_return_percent": {"type": "number"},
                "inflation_percent": {"type": "number"},
                "withdrawal_years": {"type": "integer"}
            }
        },
        "finance.RetirementResult": {
            "type": "object",
            "properties": {
                "years_to_retirement": {"type": "integer"},
                "withdrawal_years": {"type": "integer"},
                "inflated_monthly_expense": {"type": "number"},
                "required_corpus": {"type": "number"},
                "monthly_investment": {"type": "number"}
            }
        },
        "finance.EducationInput": {"type": "object", "additionalProperties": true},
        "finance.EducationResult": {"type": "object", "additionalProperties": true},
        "services.FundList": {"type": "object", "additionalProperties": true},
        "services.FundDetail": {"type": "object", "additionalProperties": true},
        "services.PortfolioView": {"type": "object", "additionalProperties": true},
        "pagination.PageResponse-models_Investment": {"type": "object", "additionalProperties": true},
        "pagination.PageResponse-marketdata_Article": {"type": "object", "additionalProperties": true},
        "pagination.PageResponse-marketdata_StockQuote": {"type": "object", "additionalProperties": true},
        "marketdata.Chart": {"type": "object", "additionalProperties": true},
        "marketdata.StockDetails": {"type": "object", "additionalProperties": true},
        "prediction.Prediction": {"type": "object", "additionalProperties": true},
        "models.StockPrediction": {"type": "object", "additionalProperties": true}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Financogram API",
	Description:      "Financogram values mutual fund portfolios against live NAVs, serves market data and runs personal finance calculators.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
