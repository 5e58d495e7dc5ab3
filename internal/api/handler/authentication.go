package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/authenticating"
	"github.com/vfg2006/painel-faturamento-api/pkg/apiErrors"
	"github.com/vfg2006/painel-faturamento-api/pkg/middleware"
)

type LoginRequest struct {
	Password string `json:"senha"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// Tentar realizar o login com a senha do painel
		token, err := service.Login(req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		// Sucesso: retornar o token
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// GetSession retorna as informações da sessão autenticada
func GetSession(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !service.Enabled() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Autenticação desabilitada neste painel", nil)
			return
		}

		// Obter as claims da sessão colocadas no contexto pelo middleware
		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		response := map[string]any{
			"scope": claims.Scope,
		}
		if claims.ExpiresAt != nil {
			response["expira_em"] = claims.ExpiresAt.Time
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	// Tentar fazer cast para AuthError para obter mais detalhes
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		// Já temos o código no AuthError
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	// Verificar tipos específicos de erros
	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Senha incorreta", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe a senha do painel", nil)

	case errors.Is(err, authenticating.ErrAuthDisabled):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Autenticação desabilitada neste painel", nil)

	default:
		// Erro genérico se não conseguirmos identificar especificamente
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
