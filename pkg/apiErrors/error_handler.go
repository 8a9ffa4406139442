package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (4xx)
	ErrMissingRequiredParam = "VAL_001" // Query param obrigatório ausente
	ErrUnknownBrand         = "VAL_002" // Marca não cadastrada no registro
	ErrInvalidFormat        = "VAL_003" // Formato de dados inválido

	// Erros de configuração (5xx)
	ErrMissingCredential = "CFG_001" // Credencial obrigatória ausente no ambiente

	// Erros de serviços externos (5xx)
	ErrAdLibraryUpstream  = "EXT_001" // Falha na Meta Ad Library
	ErrRainforestUpstream = "EXT_002" // Falha na API de produtos

	// Erros do servidor (5xx)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP. Falhas de upstream e de
// credencial retornam 500, que é o contrato dos endpoints de recurso único.
var httpStatusMap = map[string]int{
	ErrMissingRequiredParam: http.StatusBadRequest,
	ErrUnknownBrand:         http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrMissingCredential:    http.StatusInternalServerError,
	ErrAdLibraryUpstream:    http.StatusInternalServerError,
	ErrRainforestUpstream:   http.StatusInternalServerError,
	ErrInternalServer:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Status  string `json:"status"`            // Sempre "error"
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Status:  "error",
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
