// Package docs holds the Swagger specs served by both services, in the form
// swag init generates.
package docs

import (
	"strings"

	"github.com/swaggo/swag"
)

const predictTemplate = `{
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
                "tags": ["prediction"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether a model is loaded and which version is serving",
                "produces": ["application/json"],
                "tags": ["prediction"],
                "summary": "Model health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthStatus"}}
                }
            }
        },
        "/predict": {
            "post": {
                "description": "Validates the applicant, derives bmi, age group, lifestyle risk and city tier, and asks the classifier for a category",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prediction"],
                "summary": "Predict the insurance premium category",
                "parameters": [
                    {
                        "description": "Applicant data",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.UserInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PredictionResponse"}},
                    "422": {"description": "Invalid input", "schema": {"$ref": "#/definitions/controllers.ValidationErrorResponse"}},
                    "500": {"description": "Classifier failure", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "model not loaded"}
            }
        },
        "controllers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Insurance Premium Category Prediction API"}
            }
        },
        "controllers.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}
            }
        },
        "models.Address": {
            "type": "object",
            "properties": {
                "city": {"type": "string", "example": "Aya Nagar"},
                "pin": {"type": "integer", "example": 110047},
                "state": {"type": "string", "example": "New Delhi"}
            }
        },
        "models.ExtendedUserInput": {
            "type": "object",
            "required": ["age", "weight", "height", "income_lpa", "smoker", "city", "occupation"],
            "properties": {
                "address": {"$ref": "#/definitions/models.Address"},
                "age": {"type": "integer", "minimum": 1, "maximum": 99, "example": 30},
                "allergies": {"type": "array", "maxItems": 5, "items": {"type": "string"}, "example": ["pollen", "dust"]},
                "city": {"type": "string", "example": "Mumbai"},
                "contact_details": {"type": "object", "additionalProperties": {"type": "string"}},
                "email": {"type": "string", "description": "Domain must be hdfc.com, icici.com, sbi.com, axisbank.com or canarabank.com", "example": "applicant@hdfc.com"},
                "height": {"type": "number", "example": 1.7},
                "income_lpa": {"type": "number", "description": "Applicants older than 60 need at least 1000000", "example": 10},
                "linkedin_url": {"type": "string", "format": "uri", "example": "https://www.linkedin.com/in/applicant"},
                "married": {"type": "boolean", "example": false},
                "name": {"type": "string", "maxLength": 50, "example": "Nitish"},
                "occupation": {
                    "type": "string",
                    "enum": ["retired", "freelancer", "student", "government_job", "business_owner", "unemployed", "private_job"],
                    "example": "private_job"
                },
                "smoker": {"type": "boolean", "example": false},
                "weight": {"type": "number", "example": 65}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "model_loaded": {"type": "boolean", "example": true},
                "model_version": {"type": "string", "example": "1.0.0"},
                "status": {"type": "string", "example": "OK"}
            }
        },
        "models.PredictionResponse": {
            "type": "object",
            "properties": {
                "response": {"$ref": "#/definitions/models.PredictionResult"}
            }
        },
        "models.PredictionResult": {
            "type": "object",
            "properties": {
                "class_probabilities": {"type": "object", "additionalProperties": {"type": "number"}},
                "confidence": {"type": "number", "example": 0.8432},
                "predicted_category": {"type": "string", "example": "Low"}
            }
        },
        "models.UserInput": {
            "type": "object",
            "required": ["age", "weight", "height", "income_lpa", "smoker", "city", "occupation"],
            "properties": {
                "age": {"type": "integer", "example": 30},
                "city": {"type": "string", "example": "Mumbai"},
                "height": {"type": "number", "example": 1.7},
                "income_lpa": {"type": "number", "example": 10},
                "occupation": {
                    "type": "string",
                    "enum": ["retired", "freelancer", "student", "government_job", "business_owner", "unemployed", "private_job"],
                    "example": "private_job"
                },
                "smoker": {"type": "boolean", "example": false},
                "weight": {"type": "number", "example": 65}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "age"},
                "message": {"type": "string", "example": "must be greater than 0"}
            }
        }
    }
}`

// PredictInfo holds exported Swagger Info so clients can modify it
var PredictInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Insurance Premium Category Prediction API",
	Description:      "Predicts an insurance premium category from applicant data.",
	InfoInstanceName: "predict",
	SwaggerTemplate:  predictTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

const basicInputRef = `"$ref": "#/definitions/models.UserInput"`

// PredictExtendedInfo documents the same service when it accepts the
// extended applicant body.
var PredictExtendedInfo = &swag.Spec{
	Version:          PredictInfo.Version,
	Host:             PredictInfo.Host,
	BasePath:         PredictInfo.BasePath,
	Schemes:          PredictInfo.Schemes,
	Title:            PredictInfo.Title,
	Description:      PredictInfo.Description,
	InfoInstanceName: "predict_extended",
	SwaggerTemplate:  strings.Replace(predictTemplate, basicInputRef, `"$ref": "#/definitions/models.ExtendedUserInput"`, 1),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// PredictInstance names the swag instance matching the accepted body schema.
func PredictInstance(extended bool) string {
	if extended {
		return PredictExtendedInfo.InstanceName()
	}
	return PredictInfo.InstanceName()
}

func init() {
	swag.Register(PredictInfo.InstanceName(), PredictInfo)
	swag.Register(PredictExtendedInfo.InstanceName(), PredictExtendedInfo)
}
