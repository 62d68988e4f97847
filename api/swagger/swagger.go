package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Exercise API",
        "description": "Users, networks, memberships, exercises and groups",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "tags": [
        {"name": "Init", "description": "Session bootstrap"},
        {"name": "Exercise", "description": "Dated activity windows"},
        {"name": "Group", "description": "Labelled, coloured groups"},
        {"name": "User", "description": "User directory"},
        {"name": "Network", "description": "Networks and their members"},
        {"name": "Member", "description": "Network memberships"},
        {"name": "Ops", "description": "Probes and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {"tags": ["Ops"], "summary": "Liveness probe", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/ready": {
            "get": {"tags": ["Ops"], "summary": "Readiness probe", "responses": {
                "200": {"description": "Ready", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                "503": {"description": "Dependency unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
            }}
        },
        "/init/{email}": {
            "get": {
                "tags": ["Init"],
                "summary": "Bootstrap a session",
                "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "User has no membership", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown email", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exercise": {
            "get": {"tags": ["Exercise"], "summary": "List exercises", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {
                "tags": ["Exercise"],
                "summary": "Create exercise",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExercisePayload"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exercise/{id}": {
            "get": {
                "tags": ["Exercise"],
                "summary": "Get exercise",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Exercise"],
                "summary": "Update exercise",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExercisePayload"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Exercise"],
                "summary": "Delete exercise",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/group": {
            "get": {"tags": ["Group"], "summary": "List groups", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {
                "tags": ["Group"],
                "summary": "Create group",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGroupRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/group/{id}": {
            "get": {
                "tags": ["Group"],
                "summary": "Get group",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "patch": {
                "tags": ["Group"],
                "summary": "Edit group",
                "description": "Omitted fields are kept; null clears the stored value.",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EditGroupeDto"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "libelle must be between 2 and 50 characters", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Group"],
                "summary": "Delete group",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/user": {
            "post": {
                "tags": ["User"],
                "summary": "Register user",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/user/{id}": {
            "get": {
                "tags": ["User"],
                "summary": "Get user",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/network": {
            "get": {"tags": ["Network"], "summary": "List networks", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {
                "tags": ["Network"],
                "summary": "Create network",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateNetworkRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/network/{id}": {
            "get": {
                "tags": ["Network"],
                "summary": "Get network",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/network/{id}/members": {
            "get": {
                "tags": ["Network"],
                "summary": "List network members",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/member": {
            "post": {
                "tags": ["Member"],
                "summary": "Add a user to a network",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMemberRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already a member", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/member/{id}": {
            "delete": {
                "tags": ["Member"],
                "summary": "Remove a membership",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        }
    },
    "definitions": {
        "ExercisePayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "startDate": {"type": "string", "format": "date-time", "example": "2024-05-01T08:30:00.000Z"},
                "endDate": {"type": "string", "format": "date-time", "example": "2024-05-31T18:00:00.000Z"}
            },
            "required": ["startDate", "endDate"]
        },
        "CreateGroupRequest": {
            "type": "object",
            "properties": {
                "libelle": {"type": "string", "minLength": 2, "maxLength": 50},
                "couleur": {"type": "string"}
            },
            "required": ["libelle"]
        },
        "EditGroupeDto": {
            "type": "object",
            "properties": {
                "libelle": {"type": "string", "minLength": 2, "maxLength": 50, "x-nullable": true},
                "couleur": {"type": "string", "x-nullable": true}
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "format": "email"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"}
            },
            "required": ["email"]
        },
        "CreateNetworkRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}},
            "required": ["name"]
        },
        "CreateMemberRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "networkId": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "MEMBER"]}
            },
            "required": ["userId", "networkId"]
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
