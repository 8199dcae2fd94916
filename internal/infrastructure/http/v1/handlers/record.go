package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
)

// RecordService is the operation surface shared by the record services.
type RecordService[T any] interface {
	List(ctx context.Context, rng *period.Range) ([]T, error)
	GetByID(ctx context.Context, recID id.ID) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, recID id.ID) error
}

// RecordHandlerConfig wires a record kind into the generic handler.
type RecordHandlerConfig[T any, C any, U any] struct {
	Service RecordService[T]

	// MapCreate converts a bound create request into a new entity.
	MapCreate func(req *C) *T

	// ApplyUpdate applies a bound partial update onto the stored entity.
	ApplyUpdate func(req *U, existing *T)
}

// RecordHandler serves the uniform CRUD surface of a record kind.
// Updates are partial: the stored record is fetched, the present fields
// applied, and the result validated and saved as a whole.
type RecordHandler[T any, C any, U any] struct {
	*BaseHandler
	cfg RecordHandlerConfig[T, C, U]
}

// NewRecordHandler creates a handler for one record kind.
func NewRecordHandler[T any, C any, U any](base *BaseHandler, cfg RecordHandlerConfig[T, C, U]) *RecordHandler[T, C, U] {
	return &RecordHandler[T, C, U]{BaseHandler: base, cfg: cfg}
}

// List handles GET / with an optional ?month= filter.
func (h *RecordHandler[T, C, U]) List(c *gin.Context) {
	rng, ok := h.MonthRange(c)
	if !ok {
		return
	}
	recs, err := h.cfg.Service.List(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, recs)
}

// Get handles GET /:id.
func (h *RecordHandler[T, C, U]) Get(c *gin.Context) {
	recID, ok := h.ParseID(c)
	if !ok {
		return
	}
	rec, err := h.cfg.Service.GetByID(c.Request.Context(), recID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, rec)
}

// Create handles POST /.
func (h *RecordHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !h.BindJSON(c, &req) {
		return
	}
	rec := h.cfg.MapCreate(&req)
	if err := h.cfg.Service.Create(c.Request.Context(), rec); err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedData(c, rec)
}

// Update handles PUT /:id.
func (h *RecordHandler[T, C, U]) Update(c *gin.Context) {
	recID, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req U
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.cfg.Service.GetByID(c.Request.Context(), recID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.cfg.ApplyUpdate(&req, existing)
	if err := h.cfg.Service.Update(c.Request.Context(), existing); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, existing)
}

// Delete handles DELETE /:id.
func (h *RecordHandler[T, C, U]) Delete(c *gin.Context) {
	recID, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.cfg.Service.Delete(c.Request.Context(), recID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
