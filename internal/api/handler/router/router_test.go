package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/painel-faturamento-api/pkg/apiErrors"
)

func TestRouter(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	t.Run("Deve registrar e atender a rota", func(t *testing.T) {
		rt := New(WithRoutes(Route{
			Path:    "/ping",
			Method:  http.MethodGet,
			Handler: okHandler,
		}))

		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		recorder := httptest.NewRecorder()

		rt.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ok", recorder.Body.String())
	})

	t.Run("Rota desconhecida responde 404", func(t *testing.T) {
		rt := New()

		request := httptest.NewRequest(http.MethodGet, "/nada", nil)
		recorder := httptest.NewRecorder()

		rt.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrRouteNotFound, apiErr.Code)
	})

	t.Run("Método diferente do registrado responde 405", func(t *testing.T) {
		rt := New(WithRoutes(Route{
			Path:    "/ping",
			Method:  http.MethodGet,
			Handler: okHandler,
		}))

		request := httptest.NewRequest(http.MethodPost, "/ping", nil)
		recorder := httptest.NewRecorder()

		rt.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrMethodNotAllowed, apiErr.Code)
	})

	t.Run("Middlewares da rota rodam na ordem declarada", func(t *testing.T) {
		appendHeader := func(value string) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Add("X-Ordem", value)
					next.ServeHTTP(w, r)
				})
			}
		}

		rt := New(WithRoutes(Route{
			Path:    "/ping",
			Method:  http.MethodGet,
			Handler: okHandler,
			Middlewares: []func(http.Handler) http.Handler{
				appendHeader("primeiro"),
				appendHeader("segundo"),
			},
		}))

		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		recorder := httptest.NewRecorder()

		rt.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, []string{"primeiro", "segundo"}, recorder.Header().Values("X-Ordem"))
	})
}
