package handlers

import (
	"ricemill/internal/domain/purchase"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// PurchaseHTTPHandler serves the paddy purchase CRUD surface.
type PurchaseHTTPHandler = RecordHandler[
	purchase.Purchase,
	dto.CreatePurchaseRequest,
	dto.UpdatePurchaseRequest,
]

// NewPurchaseHandler creates the purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHTTPHandler {
	return NewRecordHandler(base, RecordHandlerConfig[
		purchase.Purchase,
		dto.CreatePurchaseRequest,
		dto.UpdatePurchaseRequest,
	]{
		Service: service,
		MapCreate: func(req *dto.CreatePurchaseRequest) *purchase.Purchase {
			return req.ToEntity()
		},
		ApplyUpdate: func(req *dto.UpdatePurchaseRequest, existing *purchase.Purchase) {
			req.ApplyTo(existing)
		},
	})
}
