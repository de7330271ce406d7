// Package docs holds the OpenAPI description served at /swagger/.
// Regenerate with: swag init -g cmd/app/main.go
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
        "/api/v1/wagers": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wagers"],
                "summary": "Place a wager",
                "parameters": [
                    {"description": "Wager", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PlaceWagerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SettlementResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.WagerErrorResponse"}},
                    "402": {"description": "Payment Required", "schema": {"$ref": "#/definitions/handler.WagerErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.WagerErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.WagerErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.WagerErrorResponse"}}
                }
            }
        },
        "/api/v1/balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Current balance of the session player",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BalanceResponse"}}
                }
            }
        },
        "/api/v1/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Ledger history of the session player",
                "parameters": [
                    {"type": "integer", "description": "Maximum entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TransactionsResponse"}}
                }
            }
        },
        "/api/v1/venues/{venueID}/plays-remaining": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wagers"],
                "summary": "Plays left today at a venue",
                "parameters": [
                    {"type": "string", "description": "Venue ID", "name": "venueID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaysRemainingResponse"}}
                }
            }
        },
        "/api/v1/admin/ledger/deposit": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Credit a player",
                "parameters": [
                    {"description": "Deposit", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DepositRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.LedgerTransaction"}}
                }
            }
        },
        "/api/v1/admin/venues/{venueID}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Venue settings",
                "parameters": [
                    {"type": "string", "description": "Venue ID", "name": "venueID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Venue"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create or replace venue settings",
                "parameters": [
                    {"type": "string", "description": "Venue ID", "name": "venueID", "in": "path", "required": true},
                    {"description": "Venue", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpsertVenueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Venue"}}
                }
            }
        },
        "/api/v1/admin/plays": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "List settled plays",
                "parameters": [
                    {"type": "string", "name": "player_id", "in": "query"},
                    {"type": "string", "name": "venue_id", "in": "query"},
                    {"type": "string", "format": "date-time", "name": "from", "in": "query"},
                    {"type": "string", "format": "date-time", "name": "to", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaysResponse"}}
                }
            }
        },
        "/api/v1/admin/plays/{playID}/verify": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "Re-verify a settled play",
                "parameters": [
                    {"type": "string", "description": "Play ID", "name": "playID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VerifyPlayResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "handler.PlaceWagerRequest": {
            "type": "object",
            "required": ["venue_id"],
            "properties": {
                "venue_id": {"type": "string", "maxLength": 128},
                "bet_amount": {"type": "integer", "minimum": 1}
            }
        },
        "handler.WagerErrorResponse": {
            "type": "object",
            "properties": {
                "error_code": {"type": "string", "enum": ["InvalidBet", "VenueNotEnabled", "QuotaExceeded", "InsufficientFunds", "TransactionFailed"]},
                "message": {"type": "string"}
            }
        },
        "handler.DepositRequest": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "amount": {"type": "integer"},
                "source": {"type": "string"}
            }
        },
        "handler.UpsertVenueRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "wagering_enabled": {"type": "boolean"},
                "daily_play_quota": {"type": "integer"},
                "timezone": {"type": "string"},
                "game_mode": {"type": "string"}
            }
        },
        "handler.BalanceResponse": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "balance": {"type": "integer"}
            }
        },
        "handler.TransactionsResponse": {
            "type": "object",
            "properties": {
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/domain.LedgerTransaction"}}
            }
        },
        "handler.PlaysRemainingResponse": {
            "type": "object",
            "properties": {
                "venue_id": {"type": "string"},
                "can_play": {"type": "boolean"},
                "plays_remaining": {"type": "integer"}
            }
        },
        "handler.PlaysResponse": {
            "type": "object",
            "properties": {
                "plays": {"type": "array", "items": {"$ref": "#/definitions/domain.PlayRecord"}},
                "count": {"type": "integer"}
            }
        },
        "handler.VerifyPlayResponse": {
            "type": "object",
            "properties": {
                "play_id": {"type": "string"},
                "signature_valid": {"type": "boolean"},
                "payout_consistent": {"type": "boolean"},
                "expected_payout": {"type": "integer"},
                "stored_payout": {"type": "integer"},
                "conservation_holds": {"type": "boolean"},
                "verified": {"type": "boolean"}
            }
        },
        "domain.SettlementResult": {
            "type": "object",
            "properties": {
                "play_id": {"type": "string"},
                "outcome_grid": {"type": "array", "items": {"type": "array", "items": {"type": "string"}}},
                "winning_line": {"type": "string"},
                "payout_amount": {"type": "integer"},
                "payout_class": {"type": "string"},
                "balance_before": {"type": "integer"},
                "balance_after": {"type": "integer"},
                "spins_remaining_today": {"type": "integer"},
                "signature": {"type": "string"},
                "server_timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "domain.PlayRecord": {
            "type": "object",
            "properties": {
                "play_id": {"type": "string"},
                "player_id": {"type": "string"},
                "venue_id": {"type": "string"},
                "game_mode": {"type": "string"},
                "bet_amount": {"type": "integer"},
                "payout_amount": {"type": "integer"},
                "payout_class": {"type": "string"},
                "balance_before": {"type": "integer"},
                "balance_after": {"type": "integer"},
                "signature": {"type": "string"},
                "play_date": {"type": "string", "format": "date"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.LedgerTransaction": {
            "type": "object",
            "properties": {
                "transaction_id": {"type": "integer"},
                "player_id": {"type": "string"},
                "direction": {"type": "string"},
                "category": {"type": "string"},
                "amount": {"type": "integer"},
                "balance_after": {"type": "integer"},
                "reference_id": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.Venue": {
            "type": "object",
            "properties": {
                "venue_id": {"type": "string"},
                "name": {"type": "string"},
                "wagering_enabled": {"type": "boolean"},
                "daily_play_quota": {"type": "integer"},
                "timezone": {"type": "string"},
                "game_mode": {"type": "string"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wager Engine API",
	Description:      "Server-authoritative wagering: settlement, ledger and audit.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
