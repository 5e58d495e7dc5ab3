package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord representa uma linha da view de faturamento por produto.
// EmissionDate fica nil quando a view emite uma data fora dos formatos
// conhecidos; o filtro diário descarta essas linhas.
type SaleRecord struct {
	EmissionDate *time.Time
	Salesperson  string
	InvoiceValue decimal.Decimal
}

// ReturnRecord representa uma linha da view de devoluções.
type ReturnRecord struct {
	Quantity        int
	TotalValue      decimal.Decimal
	InvoiceNumber   string
	EmissionDate    *time.Time
	SalespersonCode string
	SalespersonName string
}
