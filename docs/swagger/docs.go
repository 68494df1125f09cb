// Package swagger registers the OpenAPI document served on /swagger.
package swagger

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
        "/client/ready": {
            "get": {
                "description": "Evaluates host configuration, provider selection, SDK availability, connection and permissions in order.",
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Client Readiness",
                "responses": {
                    "200": {"description": "Ready", "schema": {"$ref": "#/definitions/readiness.Decision"}},
                    "503": {"description": "Not ready", "schema": {"$ref": "#/definitions/readiness.Decision"}}
                }
            }
        },
        "/client/check": {
            "get": {
                "description": "Tests the connection and, when it succeeds, the permissions of the object client.",
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Client Diagnostics",
                "parameters": [
                    {"type": "boolean", "description": "Verify that delete is not granted", "name": "delete", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Messages", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/client/presign/{hash}": {
            "get": {
                "description": "Generates a pre-signed URL for the object stored under the content hash.",
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Presign Download",
                "parameters": [
                    {"type": "string", "description": "Content hash", "name": "hash", "in": "path", "required": true},
                    {"type": "string", "description": "Content-Disposition override", "name": "disposition", "in": "query"},
                    {"type": "string", "description": "Content-Type override", "name": "content_type", "in": "query"},
                    {"type": "integer", "description": "File size in bytes, adds should_presign to the response", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "URL", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Invalid size", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "501": {"description": "Not supported", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/client/range/{hash}": {
            "get": {
                "description": "Returns the requested bytes of the object stored under the content hash.",
                "produces": ["application/octet-stream"],
                "tags": ["client"],
                "summary": "Proxy Range",
                "parameters": [
                    {"type": "string", "description": "Content hash", "name": "hash", "in": "path", "required": true},
                    {"type": "string", "description": "Byte range, e.g. bytes=0-99", "name": "Range", "in": "header", "required": true},
                    {"type": "integer", "description": "File size in bytes", "name": "size", "in": "query"}
                ],
                "responses": {
                    "206": {"description": "Partial content", "schema": {"type": "file"}},
                    "400": {"description": "Malformed range", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "501": {"description": "Not handled by the client", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "readiness.Decision": {
            "type": "object",
            "properties": {
                "ready": {"type": "boolean"},
                "reason": {"type": "string"},
                "step": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "objectfs API",
	Description:      "Diagnostics and helpers for the object storage client.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
