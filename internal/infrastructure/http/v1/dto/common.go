// Package dto defines request and response shapes for the HTTP API.
package dto

// IDResponse returns the ID of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a generic success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// MonthQuery carries the optional month filter shared by listings,
// the dashboard summary and exports. Format: YYYY-MM.
type MonthQuery struct {
	Month string `form:"month"`
}
