package apiErrors

import (
	"encoding/json"
	"net/http"
)

const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros de recurso
	ErrRouteNotFound    = "RES_001" // Rota não encontrada
	ErrMethodNotAllowed = "RES_002" // Método não permitido

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrExportFailed   = "SRV_005" // Falha ao gerar arquivo de exportação
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrExportFailed:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status retorna o status HTTP associado ao código
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
