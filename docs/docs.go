// Package docs registers the OpenAPI description served at /swagger/*any.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/extractions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Upload one or more contract documents (PDF, image, DOCX, text; max 10MB each).",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["extractions"],
                "summary": "Extract offers from contract documents",
                "parameters": [
                    {"type": "file", "description": "Contract documents", "name": "files", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Extracted offers with progress steps", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "No file provided", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "503": {"description": "Document analysis not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/offers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "List offers",
                "responses": {
                    "200": {"description": "Offers", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Add an offer manually",
                "parameters": [
                    {"description": "Offer fields", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handler.OfferRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created offer", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/offers/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Edit an offer",
                "parameters": [
                    {"type": "string", "description": "Offer ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.OfferRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated offer", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Offer not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Delete an offer",
                "parameters": [
                    {"type": "string", "description": "Offer ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Offer deleted", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Offer not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/comparison": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["comparison"],
                "summary": "Rank offers by yearly cost",
                "parameters": [
                    {"type": "number", "default": 600, "description": "Yearly consumption in MWh", "name": "consumption", "in": "query"},
                    {"type": "number", "default": 0.055, "description": "VAT rate on fixed costs", "name": "tva_fixe", "in": "query"},
                    {"type": "number", "default": 0.2, "description": "VAT rate on variable costs", "name": "tva_var", "in": "query"},
                    {"type": "string", "description": "Filter on supplier and contract type", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Ranked offers", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/comparison/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["comparison"],
                "summary": "Export the ranking",
                "parameters": [
                    {"type": "string", "default": "csv", "description": "csv or xlsx", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Export file", "schema": {"type": "file"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/documents": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "List archived documents",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Offset", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Limit", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Documents", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SourceDocument"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/documents/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Delete an archived document",
                "parameters": [
                    {"type": "string", "description": "Document ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Document deleted", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "404": {"description": "Document not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/documents/{id}/content": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/octet-stream"],
                "tags": ["documents"],
                "summary": "Download an archived document",
                "parameters": [
                    {"type": "string", "description": "Document ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Original document", "schema": {"type": "file"}},
                    "404": {"description": "Document not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.SourceDocument": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fileName": {"type": "string"},
                "contentType": {"type": "string"},
                "fileSize": {"type": "integer"},
                "createdAt": {"type": "string"}
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.APIError"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "completion": {"type": "string", "example": "ok"},
                "error": {"type": "string", "example": "database not reachable"},
                "status": {"type": "string", "example": "ok"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.OfferRequest": {
            "type": "object",
            "properties": {
                "fournisseur": {"type": "string", "example": "ENGIE"},
                "typeContrat": {"type": "string", "example": "Fixe 24 mois"},
                "prixMolecule": {"type": "number", "example": 35.5},
                "cee": {"type": "number", "example": 8.5},
                "transport": {"type": "number", "example": 8.69},
                "abonnementF": {"type": "number", "example": 120},
                "distribution": {"type": "number", "example": 5022.04},
                "transportAnn": {"type": "number", "example": 1231.08},
                "cta": {"type": "number", "example": 304.52},
                "ticgn": {"type": "number", "example": 17.16},
                "consommationReference": {"type": "number", "example": 600}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean", "example": true}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Gas Compare API",
	Description:      "Extracts natural-gas supply offers from contract documents and ranks them by yearly cost.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
