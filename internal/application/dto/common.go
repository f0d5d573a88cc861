package dto

// ErrorResponse cuerpo de error tal como lo muestra la capa de presentación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
