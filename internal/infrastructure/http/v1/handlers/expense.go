package handlers

import (
	"ricemill/internal/domain/expense"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// ExpenseHTTPHandler serves the expense CRUD surface.
type ExpenseHTTPHandler = RecordHandler[
	expense.Expense,
	dto.CreateExpenseRequest,
	dto.UpdateExpenseRequest,
]

// NewExpenseHandler creates the expense handler.
func NewExpenseHandler(base *BaseHandler, service *expense.Service) *ExpenseHTTPHandler {
	return NewRecordHandler(base, RecordHandlerConfig[
		expense.Expense,
		dto.CreateExpenseRequest,
		dto.UpdateExpenseRequest,
	]{
		Service: service,
		MapCreate: func(req *dto.CreateExpenseRequest) *expense.Expense {
			return req.ToEntity()
		},
		ApplyUpdate: func(req *dto.UpdateExpenseRequest, existing *expense.Expense) {
			req.ApplyTo(existing)
		},
	})
}
