// Package docs holds the OpenAPI document served by echo-swagger.
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
                "description": "Lists every climate route as an HTML page",
                "produces": ["text/html"],
                "tags": ["climate"],
                "summary": "List available routes",
                "responses": {
                    "200": {"description": "Route listing", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1.0/precipitation": {
            "get": {
                "description": "Maps every observation date to its precipitation. Stations sharing a date overwrite each other; missing values are null.",
                "produces": ["application/json"],
                "tags": ["climate"],
                "summary": "Precipitation by date",
                "responses": {
                    "200": {"description": "Date to precipitation", "schema": {"type": "object", "additionalProperties": {"type": "number"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/v1.0/stations": {
            "get": {
                "description": "Lists each station name once",
                "produces": ["application/json"],
                "tags": ["climate"],
                "summary": "Station names",
                "responses": {
                    "200": {"description": "Station names", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/v1.0/tobs": {
            "get": {
                "description": "Temperatures observed after one year before the most recent date, up to and including it",
                "produces": ["application/json"],
                "tags": ["climate"],
                "summary": "Trailing-year temperatures",
                "responses": {
                    "200": {"description": "Temperatures", "schema": {"type": "array", "items": {"type": "number"}}},
                    "500": {"description": "Empty dataset or internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/v1.0/{start}": {
            "get": {
                "description": "[min, avg, max] temperature from start through the most recent date. An empty array means no observations.",
                "produces": ["application/json"],
                "tags": ["climate"],
                "summary": "Temperature summary from a start date",
                "parameters": [
                    {"type": "string", "description": "Start date (YYYY-MM-DD)", "name": "start", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "[min, avg, max]", "schema": {"type": "array", "items": {"type": "number"}}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/v1.0/{start}/{end}": {
            "get": {
                "description": "[min, avg, max] temperature for start <= date <= end. An empty array means no observations in range.",
                "produces": ["application/json"],
                "tags": ["climate"],
                "summary": "Temperature summary over a date range",
                "parameters": [
                    {"type": "string", "description": "Start date (YYYY-MM-DD)", "name": "start", "in": "path", "required": true},
                    {"type": "string", "description": "End date (YYYY-MM-DD)", "name": "end", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "[min, avg, max]", "schema": {"type": "array", "items": {"type": "number"}}},
                    "400": {"description": "Invalid date or end before start", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Status of the observation store, rate limiter and report queue",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "All enabled components are up", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "A component is down", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "queue": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "rateLimiter": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "status": {"type": "string"}
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
	Title:            "Climate API",
	Description:      "Read-only climate statistics over daily weather observations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
