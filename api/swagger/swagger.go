package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Inquiry Desk API",
        "description": "Drafts student and advisor emails for program inquiries and reports on stored inquiries",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Shared staff password"},
        {"name": "Catalog", "description": "Programs, campuses and advisors"},
        {"name": "Drafts", "description": "Student and advisor email generator"},
        {"name": "Inquiries", "description": "Stored inquiries, grouping and exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness and selected inquiry store",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "No store selected"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Unlock the staff screens",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Password required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Wrong password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "End the staff session",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Logged out"}}
            }
        },
        "/api/v1/catalog": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Program and campus catalog",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/drafts": {
            "post": {
                "tags": ["Drafts"],
                "summary": "Draft emails and save the inquiry",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/DraftRequest"}}
                ],
                "responses": {"200": {"description": "Drafts; meta.notice reports the save", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/drafts/preview": {
            "post": {
                "tags": ["Drafts"],
                "summary": "Draft emails without saving",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/DraftRequest"}}
                ],
                "responses": {"200": {"description": "Drafts", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/inquiries": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Filtered inquiries grouped by campus",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "program", "type": "string"},
                    {"in": "query", "name": "campus", "type": "string"},
                    {"in": "query", "name": "creditType", "type": "string", "enum": ["Credit", "Non-Credit"]},
                    {"in": "query", "name": "q", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Inquiries"],
                "summary": "Record an inquiry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/DraftRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Inquiries"],
                "summary": "Delete every stored inquiry",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Cleared"}}
            }
        },
        "/api/v1/inquiries/breakdown": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Per-campus program counts",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/inquiries/emails": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Distinct emails of one campus group, one per line",
                "security": [{"BearerAuth": []}],
                "produces": ["text/plain", "application/json"],
                "parameters": [
                    {"in": "query", "name": "campus", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "Clipboard text"}}
            }
        },
        "/api/v1/inquiries/export": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Download the filtered list",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"in": "query", "name": "format", "type": "string", "required": true, "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        },
        "DraftRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"},
                "program": {"type": "string"},
                "campus": {"type": "string"},
                "credit_type": {"type": "string", "enum": ["Credit", "Non-Credit"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
