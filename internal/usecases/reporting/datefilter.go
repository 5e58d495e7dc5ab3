package reporting

import (
	"time"

	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/pkg/utils"
)

// FilterSalesByDay recorta as vendas emitidas no dia de referência,
// comparando só ano, mês e dia. Linhas sem data legível são descartadas e
// contadas, nunca viram erro.
func FilterSalesByDay(records []*domain.SaleRecord, day time.Time) ([]*domain.SaleRecord, int) {
	filtered := make([]*domain.SaleRecord, 0, len(records))
	dropped := 0

	for _, record := range records {
		if record == nil {
			continue
		}

		if record.EmissionDate == nil {
			dropped++
			continue
		}

		if utils.SameDay(*record.EmissionDate, day) {
			filtered = append(filtered, record)
		}
	}

	return filtered, dropped
}

// FilterReturnsByDay recorta as devoluções emitidas no dia de referência,
// com a mesma tolerância a datas ilegíveis do FilterSalesByDay.
func FilterReturnsByDay(records []*domain.ReturnRecord, day time.Time) ([]*domain.ReturnRecord, int) {
	filtered := make([]*domain.ReturnRecord, 0, len(records))
	dropped := 0

	for _, record := range records {
		if record == nil {
			continue
		}

		if record.EmissionDate == nil {
			dropped++
			continue
		}

		if utils.SameDay(*record.EmissionDate, day) {
			filtered = append(filtered, record)
		}
	}

	return filtered, dropped
}
