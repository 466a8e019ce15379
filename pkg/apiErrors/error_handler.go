package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de cálculo das métricas
	ErrMissingField   = "METRICS_001" // Campo obrigatório ausente no documento
	ErrInvalidShape   = "METRICS_002" // Seção ou campo com formato inválido
	ErrDivisionByZero = "METRICS_003" // Média sobre uma seção vazia

	// Erros do documento de métricas
	ErrDocumentNotFound  = "DOC_001" // Documento não encontrado
	ErrMalformedDocument = "DOC_002" // Documento não é um JSON válido

	// Erros de validação
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrRouteNotFound    = "VAL_004" // Rota não encontrada
	ErrMethodNotAllowed = "VAL_005" // Método não permitido na rota

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingField:      http.StatusUnprocessableEntity,
	ErrInvalidShape:      http.StatusUnprocessableEntity,
	ErrDivisionByZero:    http.StatusUnprocessableEntity,
	ErrDocumentNotFound:  http.StatusServiceUnavailable,
	ErrMalformedDocument: http.StatusServiceUnavailable,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrRouteNotFound:     http.StatusNotFound,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,
	ErrInternalServer:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código de erro
func StatusFor(code string) int {
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
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
