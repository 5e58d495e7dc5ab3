package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/painel-faturamento-api/internal/config"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/internal/scheduler"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/reporting"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/painel-faturamento-api/pkg/apiErrors"
	"github.com/vfg2006/painel-faturamento-api/pkg/currency"
	"go.uber.org/mock/gomock"
)

func newTestRefresher(reporter reporting.Reporter) *scheduler.DailyReportRefreshService {
	cfg := &config.Config{
		Report: config.Report{
			Timezone:               "UTC",
			RefreshIntervalSeconds: 10,
			RefreshEnabled:         false,
		},
	}

	return scheduler.NewDailyReportRefreshService(reporter, cfg)
}

func reportForDay(day time.Time) *domain.DailyReport {
	return &domain.DailyReport{
		ReferenceDate: day,
		Weekday:       "sexta-feira",
		Totals: domain.DailyTotals{
			TotalRevenue: decimal.RequireFromString("1500"),
			TotalReturns: decimal.RequireFromString("200"),
			NetRevenue:   decimal.RequireFromString("1300"),
		},
		Summaries: []domain.SalespersonSummary{
			{
				SalespersonName: "Alice",
				Revenue:         decimal.RequireFromString("1000"),
				Returns:         decimal.RequireFromString("200"),
				Net:             decimal.RequireFromString("800"),
			},
			{
				SalespersonName: "Bob",
				Revenue:         decimal.RequireFromString("500"),
				Returns:         decimal.Zero,
				Net:             decimal.RequireFromString("500"),
			},
		},
		Dropped:     domain.DroppedRecords{Sales: 1},
		GeneratedAt: day.Add(10 * time.Hour),
	}
}

func TestGetDailyReport(t *testing.T) {
	formatter := currency.NewFallbackFormatter("R$")

	t.Run("Data explícita - deve calcular sob demanda para o dia pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)

		day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		mockReporter.EXPECT().
			GetDailyReport(gomock.Any(), day).
			Return(reportForDay(day), nil)

		handler := GetDailyReport(mockReporter, newTestRefresher(mockReporter), formatter)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily?date=2024-03-15", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response DailyReportResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

		assert.Equal(t, "2024-03-15", response.ReferenceDate)
		assert.Equal(t, "sexta-feira", response.Weekday)
		assert.Equal(t, "Faturamento do dia 15/03/2024 - sexta-feira", response.Title)

		assert.Equal(t, "R$ 1,500.00", response.Totals.Revenue.Formatted)
		assert.Equal(t, "R$ 200.00", response.Totals.Returns.Formatted)
		assert.Equal(t, "R$ 1,300.00", response.Totals.Net.Formatted)

		assert.Len(t, response.Salespeople, 2)
		assert.Equal(t, "Alice", response.Salespeople[0].Name)
		assert.Equal(t, "R$ 800.00", response.Salespeople[0].Net.Formatted)
		assert.Equal(t, "Bob", response.Salespeople[1].Name)
		assert.Equal(t, "R$ 500.00", response.Salespeople[1].Net.Formatted)

		assert.Equal(t, 1, response.Dropped.Sales)

		// Cálculo sob demanda não carimba dados de ciclo
		assert.Empty(t, response.CycleID)
		assert.Nil(t, response.RefreshedAt)
	})

	t.Run("Data mal formada - deve responder 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)
		handler := GetDailyReport(mockReporter, newTestRefresher(mockReporter), formatter)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily?date=15-03-2024", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response apiErrors.APIError
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, apiErrors.ErrInvalidFormat, response.Code)
	})

	t.Run("Sem snapshot publicado - deve calcular o dia de hoje sob demanda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)

		today := time.Now().UTC()
		mockReporter.EXPECT().
			GetDailyReport(gomock.Any(), gomock.Any()).
			Return(reportForDay(today), nil)

		handler := GetDailyReport(mockReporter, newTestRefresher(mockReporter), formatter)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response DailyReportResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, today.Format(time.DateOnly), response.ReferenceDate)
	})

	t.Run("Snapshot do dia publicado - deve servir direto do agendador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)

		today := time.Now().UTC()
		mockReporter.EXPECT().
			GetDailyReport(gomock.Any(), gomock.Any()).
			Return(reportForDay(today), nil).
			Times(1)

		refresher := newTestRefresher(mockReporter)
		refresher.TriggerManualRefresh()

		assert.Eventually(t, func() bool {
			return refresher.Snapshot().Report != nil
		}, time.Second, 10*time.Millisecond)

		handler := GetDailyReport(mockReporter, refresher, formatter)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response DailyReportResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

		// O retrato veio do agendador, com os dados do ciclo
		assert.NotEmpty(t, response.CycleID)
		assert.NotNil(t, response.RefreshedAt)
		assert.Equal(t, "R$ 1,300.00", response.Totals.Net.Formatted)
	})

	t.Run("Origem indisponível - deve responder 503 com o código do relatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)

		reportErr := reporting.NewReportError(assert.AnError, apiErrors.ErrReportSourceUnavailable, "Falha ao consultar a view de vendas")
		mockReporter.EXPECT().
			GetDailyReport(gomock.Any(), gomock.Any()).
			Return(nil, reportErr)

		handler := GetDailyReport(mockReporter, newTestRefresher(mockReporter), formatter)

		request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily?date=2024-03-15", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var response apiErrors.APIError
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, apiErrors.ErrReportSourceUnavailable, response.Code)
	})
}
