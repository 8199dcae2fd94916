package handlers

import (
	"github.com/gin-gonic/gin"

	"ricemill/internal/domain/dashboard"
)

// DashboardHandler serves the monthly business summary.
type DashboardHandler struct {
	*BaseHandler
	service *dashboard.Service
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(base *BaseHandler, service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, service: service}
}

// Summary handles GET /dashboard/summary with an optional ?month= filter.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context(), c.Query("month"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}
