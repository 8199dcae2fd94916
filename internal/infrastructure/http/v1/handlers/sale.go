package handlers

import (
	"github.com/gin-gonic/gin"

	"ricemill/internal/core/apperror"
	"ricemill/internal/domain/sale"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// SaleHandler serves the rice sale CRUD surface. Sales carry a payment
// variant, so listing supports an extra ?type= filter on top of the
// shared month filter.
type SaleHandler struct {
	*BaseHandler
	service *sale.Service
}

// NewSaleHandler creates the sale handler.
func NewSaleHandler(base *BaseHandler, service *sale.Service) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service}
}

// List handles GET / with optional ?month= and ?type= filters.
func (h *SaleHandler) List(c *gin.Context) {
	rng, ok := h.MonthRange(c)
	if !ok {
		return
	}
	filter := sale.Filter{Range: rng}

	if raw := c.Query("type"); raw != "" {
		paymentType := sale.PaymentType(raw)
		switch paymentType {
		case sale.PaymentCash, sale.PaymentLoan, sale.PaymentBankTransfer:
			filter.PaymentType = &paymentType
		default:
			h.Error(c, apperror.NewValidation("unknown payment type").WithDetail("type", raw))
			return
		}
	}

	recs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, recs)
}

// Get handles GET /:id.
func (h *SaleHandler) Get(c *gin.Context) {
	recID, ok := h.ParseID(c)
	if !ok {
		return
	}
	rec, err := h.service.GetByID(c.Request.Context(), recID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, rec)
}

// Create handles POST /.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	rec := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), rec); err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedData(c, rec)
}

// Update handles PUT /:id with partial update semantics.
func (h *SaleHandler) Update(c *gin.Context) {
	recID, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), recID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.ApplyTo(existing)
	if err := h.service.Update(c.Request.Context(), existing); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, existing)
}

// Delete handles DELETE /:id.
func (h *SaleHandler) Delete(c *gin.Context) {
	recID, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), recID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
