// Package docs registers the OpenAPI description served under /swagger.
// It mirrors the swag annotations on the handlers; regenerate with `swag init -g cmd/server/main.go`.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "Home page",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.homeResponse"}}}
            }
        },
        "/destinations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "List destinations",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.destinationsResponse"}}}
            }
        },
        "/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.formResponse"}}}
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ports.LoginInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/register": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registration form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.formResponse"}}}
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "Registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ports.RegisterInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            }
        },
        "/book": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book a service",
                "parameters": [{"description": "Booking request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ports.BookingInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.bookingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/admin": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List bookings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.bookingListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/contact": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Send a contact message",
                "parameters": [{"description": "Contact message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ports.ContactInput"}}],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.contactResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Booking": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "service": {"type": "string", "enum": ["flight", "hotel", "car"]},
                "destination": {"type": "string"},
                "date": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "booked_by": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.Destination": {
            "type": "object",
            "properties": {
                "slug": {"type": "string"},
                "name": {"type": "string"},
                "country": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "admin"]},
                "created_at": {"type": "string"}
            }
        },
        "handler.bookingListResponse": {
            "type": "object",
            "properties": {
                "bookings": {"type": "array", "items": {"$ref": "#/definitions/domain.Booking"}},
                "count": {"type": "integer"}
            }
        },
        "handler.bookingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "booking": {"$ref": "#/definitions/domain.Booking"}
            }
        },
        "handler.contactResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.destinationsResponse": {
            "type": "object",
            "properties": {
                "destinations": {"type": "array", "items": {"$ref": "#/definitions/domain.Destination"}}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "redirect": {"type": "string"}
            }
        },
        "handler.formResponse": {
            "type": "object",
            "properties": {
                "form": {"type": "string"},
                "fields": {"type": "array", "items": {"type": "string"}},
                "options": {"type": "array", "items": {"type": "string"}},
                "csrf_token": {"type": "string"}
            }
        },
        "handler.homeResponse": {
            "type": "object",
            "properties": {
                "site": {"type": "string"},
                "services": {"type": "array", "items": {"type": "string"}},
                "links": {"type": "object", "additionalProperties": {"type": "string"}},
                "user": {"$ref": "#/definitions/handler.sessionUser"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.sessionUser"},
                "expires_at": {"type": "string"},
                "redirect": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "redirect": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}}
            }
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"},
                "redirect": {"type": "string"}
            }
        },
        "handler.sessionUser": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "ports.BookingInput": {
            "type": "object",
            "required": ["service", "destination", "date", "name", "email"],
            "properties": {
                "service": {"type": "string", "enum": ["flight", "hotel", "car"]},
                "destination": {"type": "string"},
                "date": {"type": "string", "example": "2026-05-01"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "ports.ContactInput": {
            "type": "object",
            "required": ["name", "email", "message"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "ports.LoginInput": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "ports.RegisterInput": {
            "type": "object",
            "required": ["username", "role", "password", "confirm_password"],
            "properties": {
                "username": {"type": "string", "minLength": 4, "maxLength": 25},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "admin"]},
                "password": {"type": "string", "minLength": 6, "maxLength": 72},
                "confirm_password": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wanderlust Travel API",
	Description:      "Bookings, contact intake and account management for the Wanderlust travel site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
