package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/painel-faturamento-api/internal/config"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/authenticating"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, password string) authenticating.Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return authenticating.NewService(&config.Config{
		Auth: config.Auth{
			Secret:            "chave-de-teste",
			PanelPasswordHash: string(hash),
		},
	})
}

func TestAuthMiddleware(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Painel sem senha configurada - tudo passa direto", func(t *testing.T) {
		nextCalled = false
		service := authenticating.NewService(&config.Config{})
		handler := AuthMiddleware(service)(next)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Login é público mesmo com senha configurada", func(t *testing.T) {
		nextCalled = false
		handler := AuthMiddleware(newAuthService(t, "senha-do-painel"))(next)

		request := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.True(t, nextCalled)
	})

	t.Run("Sem Authorization - deve responder 401", func(t *testing.T) {
		nextCalled = false
		handler := AuthMiddleware(newAuthService(t, "senha-do-painel"))(next)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Token sem prefixo Bearer - deve responder 401", func(t *testing.T) {
		nextCalled = false
		handler := AuthMiddleware(newAuthService(t, "senha-do-painel"))(next)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily", nil)
		request.Header.Set("Authorization", "token-cru")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Token inválido - deve responder 401", func(t *testing.T) {
		nextCalled = false
		handler := AuthMiddleware(newAuthService(t, "senha-do-painel"))(next)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily", nil)
		request.Header.Set("Authorization", "Bearer nem-de-longe-um-jwt")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Token válido - deve passar com a sessão no contexto", func(t *testing.T) {
		service := newAuthService(t, "senha-do-painel")
		token, err := service.Login("senha-do-painel")
		assert.NoError(t, err)

		var claims *domain.Claims
		capture := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ = r.Context().Value(ContextKeySession).(*domain.Claims)
			w.WriteHeader(http.StatusOK)
		})

		handler := AuthMiddleware(service)(capture)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.NotNil(t, claims)
		assert.Equal(t, "painel-faturamento", claims.Scope)
	})
}
