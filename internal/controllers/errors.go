package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthdesk/internal/apperror"
	"healthdesk/internal/validation"
)

type ValidationErrorResponse struct {
	Detail []validation.FieldError `json:"detail"`
}

type DetailResponse struct {
	Detail string `json:"detail" example:"Patient not found"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"model not loaded"`
}

type MessageResponse struct {
	Message string `json:"message" example:"patient created successfully"`
}

// abortWithError writes the response for err. Validation errors become 422
// with every failing field, upstream failures 500 with an "error" key, and
// the rest use the status of their kind with a "detail" key.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: verr.Errors})
		return
	}
	if errors.Is(err, apperror.ErrUpstream) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.AbortWithStatusJSON(apperror.StatusCode(err), DetailResponse{Detail: err.Error()})
}

// readRawInput decodes the request body as a JSON object.
func readRawInput(c *gin.Context) (validation.RawInput, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return validation.DecodeRawInput(body)
}
