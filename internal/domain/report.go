package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalespersonSummary consolida receita e devoluções de um vendedor no dia.
// Net é sempre Revenue - Returns.
type SalespersonSummary struct {
	SalespersonName string          `json:"vendedor"`
	Revenue         decimal.Decimal `json:"receita"`
	Returns         decimal.Decimal `json:"devolucao"`
	Net             decimal.Decimal `json:"faturamento"`
}

// DailyTotals agrega os valores do dia inteiro. Os totais somam todas as
// linhas filtradas, inclusive as sem vendedor atribuído.
type DailyTotals struct {
	TotalRevenue decimal.Decimal `json:"receita_total"`
	TotalReturns decimal.Decimal `json:"devolucao_total"`
	NetRevenue   decimal.Decimal `json:"faturamento_liquido"`
}

// DroppedRecords conta linhas descartadas por data ausente ou ilegível.
type DroppedRecords struct {
	Sales   int `json:"vendas"`
	Returns int `json:"devolucoes"`
}

// DailyReport é o retrato completo do painel para uma data de referência.
type DailyReport struct {
	ReferenceDate time.Time            `json:"data_referencia"`
	Weekday       string               `json:"dia_semana"`
	Totals        DailyTotals          `json:"totais"`
	Summaries     []SalespersonSummary `json:"vendedores"`
	Dropped       DroppedRecords       `json:"linhas_descartadas"`
	GeneratedAt   time.Time            `json:"gerado_em"`
}
