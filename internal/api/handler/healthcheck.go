package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-faturamento-api/infrastructure/database/postgres"
)

// HealthcheckHandler responde a sonda de liveness. O estado do banco entra
// como informação: o painel segue de pé servindo o último retrato mesmo
// com a origem fora do ar.
func HealthcheckHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"time":     time.Now().String(),
			"database": "ok",
		}

		if err := conn.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("healthcheck: banco de faturamento não respondeu")
			status["database"] = "indisponível"
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
