package docs

import "github.com/swaggo/swag"

const patientsTemplate = `{
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
                "tags": ["patients"],
                "summary": "Service banner",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}}}
            }
        },
        "/about": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Service description",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}}}
            }
        },
        "/view": {
            "get": {
                "description": "Returns the whole patient document keyed by id, in store order",
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "List every patient",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.PatientRecord"}}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/controllers.DetailResponse"}}
                }
            }
        },
        "/patient/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Get one patient",
                "parameters": [
                    {"type": "string", "example": "P001", "description": "ID of the patient in the DB", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PatientRecord"}},
                    "404": {"description": "Patient not found", "schema": {"$ref": "#/definitions/controllers.DetailResponse"}}
                }
            }
        },
        "/sort": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Sort patients",
                "parameters": [
                    {"enum": ["height", "weight", "bmi"], "type": "string", "description": "Sort on the basis of height, weight or bmi", "name": "sort_by", "in": "query", "required": true},
                    {"enum": ["asc", "desc"], "type": "string", "default": "asc", "description": "sort in asc or desc order", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PatientRecord"}}},
                    "400": {"description": "Invalid sort field or order", "schema": {"$ref": "#/definitions/controllers.DetailResponse"}},
                    "422": {"description": "Missing sort_by", "schema": {"$ref": "#/definitions/controllers.ValidationErrorResponse"}}
                }
            }
        },
        "/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "bmi and verdict are computed from height and weight",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Create a patient",
                "parameters": [
                    {"description": "Patient data", "name": "patient", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Patient"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Patient already exists", "schema": {"$ref": "#/definitions/controllers.DetailResponse"}},
                    "422": {"description": "Invalid patient", "schema": {"$ref": "#/definitions/controllers.ValidationErrorResponse"}}
                }
            }
        },
        "/edit/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Only the supplied fields change; bmi and verdict are recomputed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Update a patient",
                "parameters": [
                    {"type": "string", "description": "ID of the patient", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "patient", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PatientUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "404": {"description": "Patient not found", "schema": {"$ref": "#/definitions/controllers.DetailResponse"}},
                    "422": {"description": "Invalid update", "schema": {"$ref": "#/definitions/controllers.ValidationErrorResponse"}}
                }
            }
        },
        "/delete/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Delete a patient",
                "parameters": [
                    {"type": "string", "description": "ID of the patient", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "404": {"description": "Patient not found", "schema": {"$ref": "#/definitions/controllers.DetailResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.DetailResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string", "example": "Patient not found"}}
        },
        "controllers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "patient created successfully"}}
        },
        "controllers.ValidationErrorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}}
        },
        "models.Patient": {
            "type": "object",
            "required": ["id", "name", "city", "age", "gender", "height", "weight"],
            "properties": {
                "age": {"type": "integer", "example": 28},
                "city": {"type": "string", "example": "Guwahati"},
                "gender": {"type": "string", "enum": ["male", "female", "others"], "example": "female"},
                "height": {"type": "number", "example": 1.65},
                "id": {"type": "string", "example": "P001"},
                "name": {"type": "string", "example": "Ananya Verma"},
                "weight": {"type": "number", "example": 90}
            }
        },
        "models.PatientRecord": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "example": 28},
                "bmi": {"type": "number", "example": 33.06},
                "city": {"type": "string", "example": "Guwahati"},
                "gender": {"type": "string", "example": "female"},
                "height": {"type": "number", "example": 1.65},
                "name": {"type": "string", "example": "Ananya Verma"},
                "verdict": {"type": "string", "example": "Obese"},
                "weight": {"type": "number", "example": 90}
            }
        },
        "models.PatientUpdate": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "city": {"type": "string"},
                "gender": {"type": "string", "enum": ["male", "female", "others"]},
                "height": {"type": "number"},
                "name": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "age"},
                "message": {"type": "string", "example": "must be greater than 0"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// PatientsInfo holds exported Swagger Info so clients can modify it
var PatientsInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Patient Management System API",
	Description:      "A fully functional API to manage your patient records.",
	InfoInstanceName: "patients",
	SwaggerTemplate:  patientsTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(PatientsInfo.InstanceName(), PatientsInfo)
}
