// Package docs registra el documento OpenAPI del admin para /swagger.
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
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/animal-control/": {
            "get": {
                "produces": ["application/json"],
                "summary": "List animal control records of a tab",
                "parameters": [
                    {"type": "string", "enum": ["catch", "surrendered"], "name": "tab", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Create an animal control record",
                "parameters": [
                    {"type": "string", "enum": ["catch", "surrendered"], "name": "tab", "in": "query"},
                    {"name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animalcontrol.CreateInput"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}
            }
        },
        "/animal-control/{id}": {
            "get": {
                "summary": "Get an animal control record",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "summary": "Update changed fields of an animal control record",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animalcontrol.CreateInput"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "summary": "Delete an animal control record",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/animal-control/refresh": {
            "post": {"summary": "Refetch the animal control list", "responses": {"200": {"description": "OK"}}}
        },
        "/animal-control/statistics": {
            "get": {
                "summary": "Dashboard statistics",
                "parameters": [{"type": "string", "format": "date", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/animal-control/export": {
            "get": {
                "produces": ["application/pdf", "text/plain"],
                "summary": "Download a PDF or text report",
                "parameters": [
                    {"type": "string", "enum": ["current", "today", "date", "all"], "name": "selector", "in": "query"},
                    {"type": "string", "format": "date", "name": "date", "in": "query"},
                    {"type": "string", "enum": ["catch", "surrendered"], "name": "tab", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "enum": ["pdf", "txt"], "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "Report file"}, "400": {"description": "Invalid options"}}
            }
        },
        "/reproductive/": {
            "get": {
                "summary": "Paged reproductive records",
                "parameters": [
                    {"type": "string", "enum": ["all", "canine", "feline"], "name": "species", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "summary": "Create a reproductive record",
                "parameters": [{"name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/reproductive.Input"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/reproductive/{id}": {
            "get": {
                "summary": "Get a reproductive record",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "summary": "Replace a reproductive record",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/reproductive.Input"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "summary": "Delete a reproductive record",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/directory/users": {
            "get": {
                "summary": "Search reference users",
                "parameters": [{"type": "string", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/directory/pets": {
            "get": {
                "summary": "Search reference pets",
                "parameters": [{"type": "string", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports": {
            "get": {
                "summary": "Export history, newest first",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "animalcontrol.CreateInput": {
            "type": "object",
            "required": ["owner_name", "record_type", "date"],
            "properties": {
                "owner_name": {"type": "string"},
                "contact_number": {"type": "string"},
                "address": {"type": "string"},
                "record_type": {"type": "string", "enum": ["catch", "surrendered"]},
                "detail": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "gender": {"type": "string", "enum": ["male", "female"]},
                "date": {"type": "string", "format": "date"},
                "image_url": {"type": "string"}
            }
        },
        "reproductive.Input": {
            "type": "object",
            "required": ["name", "owner_name", "species"],
            "properties": {
                "name": {"type": "string"},
                "owner_name": {"type": "string"},
                "species": {"type": "string", "enum": ["canine", "feline"]},
                "date": {"type": "string", "format": "date"},
                "date_of_birth": {"type": "string", "format": "date"},
                "color": {"type": "string"},
                "breed": {"type": "string"},
                "gender": {"type": "string", "enum": ["male", "female"]},
                "reproductive_status": {"type": "string", "enum": ["castrated", "spayed"]}
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
	Title:            "Animal Control Admin",
	Description:      "Admin surface over the animal control and reproductive records API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
