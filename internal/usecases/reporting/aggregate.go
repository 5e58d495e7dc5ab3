package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
)

// salespersonAggregator acumula os dois lados do dia para um vendedor
type salespersonAggregator struct {
	revenue decimal.Decimal
	returns decimal.Decimal
}

// Aggregate consolida vendas e devoluções já recortadas pelo dia. Os totais
// somam todas as linhas recebidas, inclusive as sem vendedor; o quadro por
// vendedor lista apenas nomes preenchidos, com zero no lado em que o nome
// não aparece.
func Aggregate(sales []*domain.SaleRecord, returns []*domain.ReturnRecord) (domain.DailyTotals, []domain.SalespersonSummary) {
	totals := domain.DailyTotals{
		TotalRevenue: decimal.Zero,
		TotalReturns: decimal.Zero,
		NetRevenue:   decimal.Zero,
	}

	// Mapa para acumular os valores por vendedor
	accumulators := make(map[string]*salespersonAggregator)

	for _, sale := range sales {
		if sale == nil {
			continue
		}

		totals.TotalRevenue = totals.TotalRevenue.Add(sale.InvoiceValue)

		if sale.Salesperson == "" {
			continue
		}

		accumulator := getOrCreateAggregator(accumulators, sale.Salesperson)
		accumulator.revenue = accumulator.revenue.Add(sale.InvoiceValue)
	}

	for _, returned := range returns {
		if returned == nil {
			continue
		}

		totals.TotalReturns = totals.TotalReturns.Add(returned.TotalValue)

		if returned.SalespersonName == "" {
			continue
		}

		accumulator := getOrCreateAggregator(accumulators, returned.SalespersonName)
		accumulator.returns = accumulator.returns.Add(returned.TotalValue)
	}

	totals.NetRevenue = totals.TotalRevenue.Sub(totals.TotalReturns)

	summaries := make([]domain.SalespersonSummary, 0, len(accumulators))
	for name, accumulator := range accumulators {
		summaries = append(summaries, domain.SalespersonSummary{
			SalespersonName: name,
			Revenue:         accumulator.revenue,
			Returns:         accumulator.returns,
			Net:             accumulator.revenue.Sub(accumulator.returns),
		})
	}

	// Maior faturamento primeiro; empate desempata pelo nome para manter a
	// mesma ordem entre execuções
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Net.Equal(summaries[j].Net) {
			return summaries[i].Net.GreaterThan(summaries[j].Net)
		}

		return summaries[i].SalespersonName < summaries[j].SalespersonName
	})

	return totals, summaries
}

func getOrCreateAggregator(accumulators map[string]*salespersonAggregator, name string) *salespersonAggregator {
	accumulator, exists := accumulators[name]
	if !exists {
		accumulator = &salespersonAggregator{
			revenue: decimal.Zero,
			returns: decimal.Zero,
		}
		accumulators[name] = accumulator
	}

	return accumulator
}
