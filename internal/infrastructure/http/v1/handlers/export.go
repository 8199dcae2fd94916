package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"ricemill/internal/core/apperror"
	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/export"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
	"ricemill/pkg/logger"
)

// ExportHandler serves CSV downloads of the record listings. The export
// reuses the same month filter as the listings, so the file matches what
// the operator sees on screen.
type ExportHandler struct {
	*BaseHandler
	purchases  *purchase.Service
	production *production.Service
	sales      *sale.Service
	expenses   *expense.Service
	now        func() time.Time
}

// NewExportHandler creates the export handler.
func NewExportHandler(
	base *BaseHandler,
	purchases *purchase.Service,
	productionSvc *production.Service,
	sales *sale.Service,
	expenses *expense.Service,
) *ExportHandler {
	return &ExportHandler{
		BaseHandler: base,
		purchases:   purchases,
		production:  productionSvc,
		sales:       sales,
		expenses:    expenses,
		now:         time.Now,
	}
}

// Purchases handles GET /export/purchases.
func (h *ExportHandler) Purchases(c *gin.Context) {
	rng, ok := h.MonthRange(c)
	if !ok {
		return
	}
	recs, err := h.purchases.List(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}
	file, err := export.Purchases(recs, h.now())
	h.send(c, file, err)
}

// Production handles GET /export/production.
func (h *ExportHandler) Production(c *gin.Context) {
	rng, ok := h.MonthRange(c)
	if !ok {
		return
	}
	recs, err := h.production.List(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}
	file, err := export.Production(recs, h.now())
	h.send(c, file, err)
}

// Sales handles GET /export/sales with an optional ?type= filter. The
// filter is reflected in the file name.
func (h *ExportHandler) Sales(c *gin.Context) {
	rng, ok := h.MonthRange(c)
	if !ok {
		return
	}
	filter := sale.Filter{Range: rng}
	tag := export.SalesAll

	if raw := c.Query("type"); raw != "" {
		paymentType := sale.PaymentType(raw)
		switch paymentType {
		case sale.PaymentCash:
			tag = export.SalesCash
		case sale.PaymentLoan:
			tag = export.SalesLoan
		case sale.PaymentBankTransfer:
			tag = export.SalesBank
		default:
			h.Error(c, apperror.NewValidation("unknown payment type").WithDetail("type", raw))
			return
		}
		filter.PaymentType = &paymentType
	}

	recs, err := h.sales.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	file, err := export.Sales(recs, tag, h.now())
	h.send(c, file, err)
}

// Expenses handles GET /export/expenses.
func (h *ExportHandler) Expenses(c *gin.Context) {
	rng, ok := h.MonthRange(c)
	if !ok {
		return
	}
	recs, err := h.expenses.List(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}
	file, err := export.Expenses(recs, h.now())
	h.send(c, file, err)
}

// send writes the CSV file as an attachment, gzip-compressed when the
// client accepts it.
func (h *ExportHandler) send(c *gin.Context, file *export.File, err error) {
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	body := []byte(file.Content)

	if strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
		c.Header("Content-Encoding", "gzip")
		c.Header("Content-Type", export.ContentType)
		c.Status(http.StatusOK)
		gz := gzip.NewWriter(c.Writer)
		if _, err := gz.Write(body); err != nil {
			logger.Error(c.Request.Context(), "write gzip export", "error", err)
		}
		if err := gz.Close(); err != nil {
			logger.Error(c.Request.Context(), "close gzip export", "error", err)
		}
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(body)))
	c.Data(http.StatusOK, export.ContentType, body)
}
