// Package docs holds the Swagger description served at /swagger.
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
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Login page",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Log in",
                "description": "Starts a session and redirects to the dashboard. Failures redirect back to the login page with a notice.",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/register": {
            "get": {
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Registration page",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Register",
                "description": "Creates an account and redirects to the login page.",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/dashboard": {
            "get": {
                "description": "Lists every item. Requires a session.",
                "produces": ["text/html"],
                "tags": ["items"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK"},
                    "302": {"description": "no session"}
                }
            }
        },
        "/new": {
            "get": {
                "produces": ["text/html"],
                "tags": ["items"],
                "summary": "New item form",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["items"],
                "summary": "Create item",
                "parameters": [
                    {"type": "string", "description": "Name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/edit/{id}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["items"],
                "summary": "Edit item form",
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "302": {"description": "unknown id"}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["items"],
                "summary": "Update item",
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/search": {
            "get": {
                "description": "Lists every item.",
                "produces": ["text/html"],
                "tags": ["items"],
                "summary": "Search page",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "description": "Case-insensitive substring match on item names.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["items"],
                "summary": "Search items",
                "parameters": [
                    {"type": "string", "description": "Name fragment", "name": "search", "in": "formData"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
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
	Title:            "itemdesk",
	Description:      "Shared item list behind a login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
