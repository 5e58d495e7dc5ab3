package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-faturamento-api/internal/scheduler"
	"github.com/vfg2006/painel-faturamento-api/pkg/apiErrors"
)

// RunReportRefresh dispara manualmente um ciclo de atualização do relatório.
// O ciclo entra na fila do agendador; se outro estiver em andamento, espera a vez.
func RunReportRefresh(service *scheduler.DailyReportRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReportRefresh")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização não disponível", nil)
			return
		}

		service.TriggerManualRefresh()

		response := map[string]any{
			"message": "Atualização do relatório iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetRefreshStatus retorna o status do agendador de atualização do relatório
func GetRefreshStatus(service *scheduler.DailyReportRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRefreshStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização não disponível", nil)
			return
		}

		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
