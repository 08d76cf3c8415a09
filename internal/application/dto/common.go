package dto

// ErrorResponse cuerpo de error HTTP. Status siempre es "error"; el caller
// muestra Message tal cual.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// NewError construye un ErrorResponse con status "error".
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Status: "error", Code: code, Message: message}
}
