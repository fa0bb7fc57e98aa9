package dto

// ErrorResponse standard error envelope for the API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
