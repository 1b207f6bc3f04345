// Package docs is generated by swaggo/swag. Regenerate with:
//
//	swag init -g cmd/money_chat/main.go -o cmd/docs
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
        "/balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns incomes minus expenses across every captured transaction.",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get balance",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BalanceResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to get balance", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/chat/conversation": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns whether the assistant is waiting for a payment method, and the pending transaction if so.",
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Get conversation state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConversationResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to get conversation", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Discards any pending transaction and returns the conversation to idle.",
                "tags": ["chat"],
                "summary": "Reset conversation",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to reset conversation", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/chat/messages": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Interprets one sentence about money. Depending on the conversation it completes a transaction, asks how an expense was paid, or asks for more details.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"description": "Utterance", "name": "message", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChatMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChatMessageResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "429": {"description": "Too many requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to process message", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/patterns": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the phrases the assistant has learned for the current user.",
                "produces": ["application/json"],
                "tags": ["patterns"],
                "summary": "List learned patterns",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListPatternsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to list patterns", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Records a phrase with the attributes it implies, or reinforces an existing one.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patterns"],
                "summary": "Teach a phrase",
                "parameters": [
                    {"description": "Phrase and attributes", "name": "pattern", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TeachPatternRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PatternResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to teach pattern", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists the transactions captured through the chat, newest first.",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "integer", "description": "Page size (1-100, default 20)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListTransactionsResponse"}},
                    "400": {"description": "Invalid query parameters", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to list transactions", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.BalanceResponse": {
            "type": "object",
            "properties": {
                "balance": {"type": "string"},
                "formattedBalance": {"type": "string"}
            }
        },
        "dto.ChatMessageRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string", "maxLength": 500, "example": "gasté 2 lucas en el super"}
            }
        },
        "dto.ChatMessageResponse": {
            "type": "object",
            "properties": {
                "matchedPhrases": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"},
                "outcome": {"type": "string"},
                "pending": {"$ref": "#/definitions/dto.PendingTransactionResponse"},
                "transaction": {"$ref": "#/definitions/dto.TransactionResponse"}
            }
        },
        "dto.ConversationResponse": {
            "type": "object",
            "properties": {
                "pending": {"$ref": "#/definitions/dto.PendingTransactionResponse"},
                "stage": {"type": "string"}
            }
        },
        "dto.ListPatternsResponse": {
            "type": "object",
            "properties": {
                "patterns": {"type": "array", "items": {"$ref": "#/definitions/dto.PatternResponse"}}
            }
        },
        "dto.ListTransactionsResponse": {
            "type": "object",
            "properties": {
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/dto.TransactionResponse"}}
            }
        },
        "dto.PatternResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "context": {"type": "string"},
                "count": {"type": "integer"},
                "multiplier": {"type": "string"},
                "paymentMethod": {"type": "string"},
                "phrase": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "dto.PendingTransactionResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "formattedAmount": {"type": "string"},
                "person": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "dto.TeachPatternRequest": {
            "type": "object",
            "required": ["phrase"],
            "properties": {
                "category": {"type": "string"},
                "context": {"type": "string"},
                "multiplier": {"type": "string"},
                "paymentMethod": {"type": "string"},
                "phrase": {"type": "string", "maxLength": 100, "example": "birra"},
                "type": {"type": "string", "enum": ["income", "expense"]}
            }
        },
        "dto.TransactionResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "category": {"type": "string"},
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "formattedAmount": {"type": "string"},
                "paymentMethod": {"type": "string"},
                "person": {"type": "string"},
                "transactionID": {"type": "string"},
                "type": {"type": "string"}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Money Chat API",
	Description:      "Capture income and expenses by chatting in Argentine Spanish.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
