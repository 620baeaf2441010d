package controllers

type ItemPayload struct {
	Name     string   `json:"name" binding:"required"`
	Quantity *float64 `json:"quantity" binding:"required"`
	Unit     string   `json:"unit" binding:"required"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
