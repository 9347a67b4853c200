// Package docs registers the OpenAPI description served under /swagger.
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
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.healthResponse"}}
                }
            }
        },
        "/ac": {
            "get": {
                "description": "Rows keep the column order of the state file.",
                "produces": ["application/json"],
                "tags": ["ac"],
                "summary": "Current snapshot of all AC units",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.unitsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/ac/{ac_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ac"],
                "summary": "Current snapshot of one AC unit",
                "parameters": [
                    {"type": "string", "example": "F1-AC1", "description": "Unit id", "name": "ac_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.unitResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/history/{ac_id}": {
            "get": {
                "description": "Returns the last N points in file order (oldest first). With the collector's 5s interval the default of 720 points is about one hour.",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Recent temperature history of a unit",
                "parameters": [
                    {"type": "string", "example": "F1-AC1", "description": "Unit id", "name": "ac_id", "in": "path", "required": true},
                    {"type": "integer", "default": 720, "description": "Number of points; 0 means all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.historyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/command": {
            "post": {
                "description": "Validates the value, updates the unit in the state file and appends to the command log.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["command"],
                "summary": "Apply a command",
                "parameters": [
                    {"description": "Command payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CommandRequest"}}
                ],
                "responses": {
                    "200": {"description": "ok, ac_id, action, new_value", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/command/text": {
            "post": {
                "description": "Accepts the dashboard phrases \"set <id> to <n>\", \"turn on|off <id>\" and \"mode <id> cooling|heating|fan\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["command"],
                "summary": "Apply a chat command",
                "parameters": [
                    {"description": "Chat phrase", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TextCommandRequest"}}
                ],
                "responses": {
                    "200": {"description": "ok, ac_id, action, new_value", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/commands": {
            "get": {
                "description": "Reads the command log, oldest first. Optional filter by unit and a cap on the number of most recent entries.",
                "produces": ["application/json"],
                "tags": ["command"],
                "summary": "List applied commands",
                "parameters": [
                    {"type": "string", "example": "F1-AC1", "description": "Unit id", "name": "ac_id", "in": "query"},
                    {"type": "integer", "description": "Last N entries; 0 or absent means all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.commandsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CommandRequest": {
            "type": "object",
            "properties": {
                "ac_id": {"description": "Target unit", "type": "string", "example": "F1-AC1"},
                "action": {"description": "One of set_temp, set_status, set_mode", "type": "string", "example": "set_temp"},
                "note": {"description": "Optional free-text description stored in the command log", "type": "string", "example": "set F1-AC1 to 22.5"},
                "user": {"description": "Acting user, defaults to Admin", "type": "string", "example": "Admin"},
                "value": {"description": "Number in [16, 30] for set_temp, ON/OFF for set_status, Cooling/Heating/Fan for set_mode", "type": "string", "example": "22.5"}
            }
        },
        "handlers.TextCommandRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "turn off F1-AC2"},
                "user": {"type": "string", "example": "Admin"}
            }
        },
        "handlers.errorBody": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "AC not found"}
            }
        },
        "handlers.healthResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "time": {"type": "string", "example": "2025-06-01 12:30:45"}
            }
        },
        "handlers.unitsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "timestamp": {"type": "string", "example": "2025-06-01 12:30:45"}
            }
        },
        "handlers.unitResponse": {
            "type": "object",
            "properties": {
                "item": {"type": "object"}
            }
        },
        "handlers.historyResponse": {
            "type": "object",
            "properties": {
                "ac_id": {"type": "string", "example": "F1-AC1"},
                "items": {"type": "array", "items": {"type": "object"}}
            }
        },
        "handlers.commandsResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.CommandLogEntry"}}
            }
        },
        "models.CommandLogEntry": {
            "type": "object",
            "properties": {
                "ac_id": {"type": "string"},
                "command": {"type": "string"},
                "new_value": {"type": "string"},
                "old_value": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "user": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AC Fleet Dashboard API",
	Description:      "State, history and control of air-conditioning units backed by CSV files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
