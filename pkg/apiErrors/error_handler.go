package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API do painel
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Senha do painel incorreta
	ErrInvalidToken       = "AUTH_002" // Token inválido
	ErrExpiredToken       = "AUTH_003" // Token expirado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado na rota

	// Erros de relatório (3000-3999)
	ErrReportSourceUnavailable = "REP_001" // Banco de faturamento inacessível
	ErrReportSourceData        = "REP_002" // Dados ilegíveis nas views de origem

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:      http.StatusUnauthorized,
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrExpiredToken:            http.StatusUnauthorized,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrMissingRequiredData:     http.StatusBadRequest,
	ErrInvalidFormat:           http.StatusBadRequest,
	ErrRouteNotFound:           http.StatusNotFound,
	ErrMethodNotAllowed:        http.StatusMethodNotAllowed,
	ErrReportSourceUnavailable: http.StatusServiceUnavailable,
	ErrReportSourceData:        http.StatusBadGateway,
	ErrInternalServer:          http.StatusInternalServerError,
	ErrDatabaseOperation:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
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
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
