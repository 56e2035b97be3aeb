package dto

// ErrorResponse to ujednolicona odpowiedź błędu dla starszych endpointów.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse to ujednolicona odpowiedź sukcesu z opcjonalnymi danymi.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
