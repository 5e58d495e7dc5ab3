package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/painel-faturamento-api/infrastructure/database/postgres"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/pkg/utils"
)

const (
	salesView = "v_faturamento_produto"
)

type SalesRepository interface {
	ListInvoices(ctx context.Context) ([]*domain.SaleRecord, error)
}

type salesRepository struct {
	conn postgres.Conn
}

func NewSalesRepository(conn postgres.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// ListInvoices lê a view inteira. A coluna de emissão é texto na view
// legada, então o recorte por dia acontece na aplicação, não na query.
func (r *salesRepository) ListInvoices(ctx context.Context) ([]*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("emissao", "vendedor", "valor_nf").
		From(salesView).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao consultar %s: %w", salesView, err)
	}
	defer rows.Close()

	records := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		record, err := r.scanSale(rows, len(records)+1)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *salesRepository) scanSale(rows *sql.Rows, line int) (*domain.SaleRecord, error) {
	var (
		emission    sql.NullString
		salesperson sql.NullString
		value       sql.NullString
	)

	if err := rows.Scan(&emission, &salesperson, &value); err != nil {
		return nil, fmt.Errorf("erro ao escanear %s: %w", salesView, err)
	}

	if !value.Valid {
		return nil, fmt.Errorf("%w: valor_nf nulo em %s (linha %d)", ErrSourceData, salesView, line)
	}

	invoiceValue, err := utils.ParseMoney(value.String)
	if err != nil {
		return nil, fmt.Errorf("%w: valor_nf %q em %s (linha %d)", ErrSourceData, value.String, salesView, line)
	}

	record := &domain.SaleRecord{
		Salesperson:  salesperson.String,
		InvoiceValue: invoiceValue,
	}

	if emission.Valid {
		record.EmissionDate = utils.ParseViewDate(emission.String)
	}

	return record, nil
}
