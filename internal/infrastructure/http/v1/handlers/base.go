// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// BindJSON binds request body, registering a validation error on failure.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// ParseIDParam extracts and validates a UUID path parameter.
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (id.ID, bool) {
	raw := c.Param(name)
	parsed, err := id.Parse(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid "+name).WithDetail(name, raw))
		return id.Nil(), false
	}
	return parsed, true
}

// ParseIntQuery parses an integer query parameter with a default.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseBoolQuery parses a boolean query parameter.
func (h *BaseHandler) ParseBoolQuery(c *gin.Context, name string) bool {
	value, _ := strconv.ParseBool(c.Query(name))
	return value
}

// Error registers an error for the ErrorHandler middleware and aborts.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Created responds 201 with body.
func (h *BaseHandler) Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// OK responds 200 with body.
func (h *BaseHandler) OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// NoContent responds 204.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Success responds 200 with a success envelope.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: message})
}
