package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QueryEnvelope forma uniforme de resultado que consume la capa de vistas:
// datos, flag de carga y error legible (espejo del triple del view-model).
type QueryEnvelope[T any] struct {
	Data      T      `json:"data"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}
