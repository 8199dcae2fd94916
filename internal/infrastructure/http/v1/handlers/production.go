package handlers

import (
	"ricemill/internal/domain/production"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// ProductionHTTPHandler serves the milling run CRUD surface.
type ProductionHTTPHandler = RecordHandler[
	production.Run,
	dto.CreateProductionRequest,
	dto.UpdateProductionRequest,
]

// NewProductionHandler creates the production run handler.
func NewProductionHandler(base *BaseHandler, service *production.Service) *ProductionHTTPHandler {
	return NewRecordHandler(base, RecordHandlerConfig[
		production.Run,
		dto.CreateProductionRequest,
		dto.UpdateProductionRequest,
	]{
		Service: service,
		MapCreate: func(req *dto.CreateProductionRequest) *production.Run {
			return req.ToEntity()
		},
		ApplyUpdate: func(req *dto.UpdateProductionRequest, existing *production.Run) {
			req.ApplyTo(existing)
		},
	})
}
