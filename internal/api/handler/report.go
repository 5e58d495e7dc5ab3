package handler

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/internal/scheduler"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/reporting"
	"github.com/vfg2006/painel-faturamento-api/pkg/apiErrors"
	"github.com/vfg2006/painel-faturamento-api/pkg/currency"
	"github.com/vfg2006/painel-faturamento-api/pkg/log"
	"github.com/vfg2006/painel-faturamento-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MoneyResponse carrega o valor bruto e o texto formatado de um montante.
// O painel exibe o formatado; o bruto fica à disposição de quem integra.
type MoneyResponse struct {
	Value     decimal.Decimal `json:"valor"`
	Formatted string          `json:"formatado"`
}

// SalespersonRow é uma linha do quadro por vendedor
type SalespersonRow struct {
	Name    string        `json:"vendedor"`
	Revenue MoneyResponse `json:"receita"`
	Returns MoneyResponse `json:"devolucao"`
	Net     MoneyResponse `json:"faturamento"`
}

// DailyTotalsResponse são os três cartões do topo do painel
type DailyTotalsResponse struct {
	Revenue MoneyResponse `json:"receita"`
	Returns MoneyResponse `json:"devolucao"`
	Net     MoneyResponse `json:"faturamento"`
}

// DailyReportResponse é o payload completo que o painel consome
type DailyReportResponse struct {
	ReferenceDate string                `json:"data_referencia"`
	Weekday       string                `json:"dia_semana"`
	Title         string                `json:"titulo"`
	Totals        DailyTotalsResponse   `json:"totais"`
	Salespeople   []SalespersonRow      `json:"vendedores"`
	Dropped       domain.DroppedRecords `json:"linhas_descartadas"`
	GeneratedAt   time.Time             `json:"gerado_em"`
	RefreshedAt   *time.Time            `json:"atualizado_em,omitempty"`
	CycleID       string                `json:"ciclo,omitempty"`
	LastError     string                `json:"erro_ultimo_ciclo,omitempty"`
}

func GetDailyReport(
	service reporting.Reporter,
	refresher *scheduler.DailyReportRefreshService,
	formatter *currency.Formatter,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Data explícita: calcular sob demanda para o dia pedido
		if dateParam := r.URL.Query().Get("date"); dateParam != "" {
			date, err := utils.ParseDate(dateParam)
			if err != nil {
				logger.WithFields(log.Fields{
					"date":  dateParam,
					"error": err.Error(),
				}).Warn("report: invalid date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", nil)
				return
			}

			report, err := service.GetDailyReport(r.Context(), *date)
			if err != nil {
				handleReportError(w, logger, err)
				return
			}

			writeDailyReport(w, logger, buildDailyReportResponse(report, nil, formatter))
			return
		}

		// Sem data: servir o último retrato publicado quando ele é de hoje
		snapshot := refresher.Snapshot()
		today := time.Now().In(refresher.Location())

		if snapshot.Report != nil && utils.SameDay(snapshot.Report.ReferenceDate, today) {
			writeDailyReport(w, logger, buildDailyReportResponse(snapshot.Report, &snapshot, formatter))
			return
		}

		// Serviço recém-iniciado ou virada de dia: calcular agora
		logger.Info("report: snapshot ausente ou de outro dia, calculando sob demanda")

		report, err := service.GetDailyReport(r.Context(), today)
		if err != nil {
			handleReportError(w, logger, err)
			return
		}

		writeDailyReport(w, logger, buildDailyReportResponse(report, nil, formatter))
	})
}

func buildDailyReportResponse(
	report *domain.DailyReport,
	snapshot *scheduler.ReportSnapshot,
	formatter *currency.Formatter,
) *DailyReportResponse {
	rows := make([]SalespersonRow, 0, len(report.Summaries))
	for _, summary := range report.Summaries {
		rows = append(rows, SalespersonRow{
			Name:    summary.SalespersonName,
			Revenue: newMoney(summary.Revenue, formatter),
			Returns: newMoney(summary.Returns, formatter),
			Net:     newMoney(summary.Net, formatter),
		})
	}

	response := &DailyReportResponse{
		ReferenceDate: report.ReferenceDate.Format(time.DateOnly),
		Weekday:       report.Weekday,
		Title: fmt.Sprintf(
			"Faturamento do dia %s - %s",
			utils.FormatDateBR(report.ReferenceDate),
			report.Weekday,
		),
		Totals: DailyTotalsResponse{
			Revenue: newMoney(report.Totals.TotalRevenue, formatter),
			Returns: newMoney(report.Totals.TotalReturns, formatter),
			Net:     newMoney(report.Totals.NetRevenue, formatter),
		},
		Salespeople: rows,
		Dropped:     report.Dropped,
		GeneratedAt: report.GeneratedAt,
	}

	if snapshot != nil {
		response.RefreshedAt = &snapshot.RefreshedAt
		response.CycleID = snapshot.CycleID
		response.LastError = snapshot.LastError
	}

	return response
}

func newMoney(value decimal.Decimal, formatter *currency.Formatter) MoneyResponse {
	return MoneyResponse{
		Value:     value,
		Formatted: formatter.Format(value),
	}
}

func writeDailyReport(w http.ResponseWriter, logger log.Logger, response *DailyReportResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithField("error", err.Error()).Error("report: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleReportError traduz falhas do relatório para o código de API
func handleReportError(w http.ResponseWriter, logger log.Logger, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		logger.WithField("error", reportErr.Error()).Error("report: falha ao montar o relatório diário")

		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	logger.WithField("error", err.Error()).Error("report: erro inesperado ao montar o relatório diário")

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao montar o relatório", nil)
}
