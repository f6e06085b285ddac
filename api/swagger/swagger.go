// Package swagger exposes the generated OpenAPI document.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Complaint Desk API",
        "description": "Complaint intake, classification and support chatbot for a college community",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Student and admin login"},
        {"name": "Complaints", "description": "Complaint lifecycle"},
        {"name": "Chatbot", "description": "Support chatbot"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/student/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Student login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdminLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/classify-complaint": {
            "post": {
                "tags": ["Complaints"],
                "summary": "Submit a complaint",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitComplaintRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubmitComplaintResponse"}},
                    "400": {"description": "Missing complaint text or student ID"},
                    "500": {"description": "Classification or storage failure"}
                }
            }
        },
        "/student/complaints/{student_id}": {
            "get": {
                "tags": ["Complaints"],
                "summary": "List own complaints",
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Storage failure"}
                }
            }
        },
        "/admin/complaints": {
            "get": {
                "tags": ["Complaints"],
                "summary": "List all complaints",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Storage failure"}
                }
            }
        },
        "/admin/complaints/{id}/resolve": {
            "put": {
                "tags": ["Complaints"],
                "summary": "Resolve a complaint",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Complaint not found"},
                    "500": {"description": "Storage failure"}
                }
            }
        },
        "/admin/complaints/export": {
            "get": {
                "tags": ["Complaints"],
                "summary": "Export complaints",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "400": {"description": "Unsupported format"}
                }
            }
        },
        "/chatbot": {
            "post": {
                "tags": ["Chatbot"],
                "summary": "Support chatbot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatResponse"}},
                    "400": {"description": "No message provided"},
                    "500": {"description": "Model failure"}
                }
            }
        }
    },
    "definitions": {
        "StudentLoginRequest": {
            "type": "object",
            "required": ["student_id", "password"],
            "properties": {
                "student_id": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "AdminLoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SubmitComplaintRequest": {
            "type": "object",
            "required": ["complaint_text", "student_id"],
            "properties": {
                "complaint_text": {"type": "string"},
                "student_id": {"type": "string"},
                "student_name": {"type": "string"},
                "complaint_type": {"type": "string"}
            }
        },
        "SubmitComplaintResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "category": {"type": "string"},
                "sentiment": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "conversation_history": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ChatResponse": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"},
                "status": {"type": "string"}
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
