package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
)

func TestFilterSalesByDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		records         []*domain.SaleRecord
		expectedCount   int
		expectedDropped int
	}{
		{
			name: "Deve manter apenas vendas emitidas no dia de referência",
			records: []*domain.SaleRecord{
				{EmissionDate: timePtr(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)), Salesperson: "Alice", InvoiceValue: money("100")},
				{EmissionDate: timePtr(time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)), Salesperson: "Bob", InvoiceValue: money("200")},
				{EmissionDate: timePtr(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)), Salesperson: "Carol", InvoiceValue: money("300")},
			},
			expectedCount:   1,
			expectedDropped: 0,
		},
		{
			name: "Horários diferentes do mesmo dia - todos devem entrar",
			records: []*domain.SaleRecord{
				{EmissionDate: timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), Salesperson: "Alice", InvoiceValue: money("100")},
				{EmissionDate: timePtr(time.Date(2024, 3, 15, 12, 15, 45, 0, time.UTC)), Salesperson: "Bob", InvoiceValue: money("200")},
				{EmissionDate: timePtr(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)), Salesperson: "Carol", InvoiceValue: money("300")},
			},
			expectedCount:   3,
			expectedDropped: 0,
		},
		{
			name: "Linhas com data ilegível - devem ser descartadas e contadas",
			records: []*domain.SaleRecord{
				{EmissionDate: timePtr(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)), Salesperson: "Alice", InvoiceValue: money("100")},
				{EmissionDate: nil, Salesperson: "Bob", InvoiceValue: money("200")},
				{EmissionDate: nil, Salesperson: "Carol", InvoiceValue: money("300")},
			},
			expectedCount:   1,
			expectedDropped: 2,
		},
		{
			name:            "Lista vazia - deve devolver vazio sem descartes",
			records:         nil,
			expectedCount:   0,
			expectedDropped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, dropped := FilterSalesByDay(tt.records, day)

			assert.Len(t, filtered, tt.expectedCount)
			assert.Equal(t, tt.expectedDropped, dropped)
		})
	}
}

func TestFilterReturnsByDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		records         []*domain.ReturnRecord
		expectedCount   int
		expectedDropped int
	}{
		{
			name: "Deve manter apenas devoluções emitidas no dia de referência",
			records: []*domain.ReturnRecord{
				{EmissionDate: timePtr(time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)), SalespersonName: "Alice", TotalValue: money("50")},
				{EmissionDate: timePtr(time.Date(2024, 2, 15, 14, 0, 0, 0, time.UTC)), SalespersonName: "Bob", TotalValue: money("60")},
			},
			expectedCount:   1,
			expectedDropped: 0,
		},
		{
			name: "Devolução sem data legível - deve ser descartada e contada",
			records: []*domain.ReturnRecord{
				{EmissionDate: nil, SalespersonName: "Alice", TotalValue: money("50")},
			},
			expectedCount:   0,
			expectedDropped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, dropped := FilterReturnsByDay(tt.records, day)

			assert.Len(t, filtered, tt.expectedCount)
			assert.Equal(t, tt.expectedDropped, dropped)
		})
	}
}

func timePtr(value time.Time) *time.Time {
	return &value
}
