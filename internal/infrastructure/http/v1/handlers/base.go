// Package handlers contains the HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ricemill/internal/core/apperror"
	appctx "ricemill/internal/core/context"
	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers the error on the Gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseID parses the :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (id.ID, bool) {
	recID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid record id").WithDetail("id", c.Param("id")))
		return id.ID{}, false
	}
	return recID, true
}

// MonthRange resolves the optional ?month= query into a date range.
func (h *BaseHandler) MonthRange(c *gin.Context) (*period.Range, bool) {
	rng, err := period.MonthRange(c.Query("month"))
	if err != nil {
		h.Error(c, err)
		return nil, false
	}
	return rng, true
}

// Username extracts the authenticated operator from the request context.
func (h *BaseHandler) Username(c *gin.Context) string {
	user := appctx.GetUser(c.Request.Context())
	if user == nil {
		return ""
	}
	return user.Username
}

// Created sends 201 response with ID.
func (h *BaseHandler) Created(c *gin.Context, recID string) {
	c.JSON(http.StatusCreated, dto.IDResponse{ID: recID})
}

// CreatedData sends 201 response with the stored record.
func (h *BaseHandler) CreatedData(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Success sends a generic success response.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: message})
}
