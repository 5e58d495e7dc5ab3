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
	returnsView = "v_devolucoes"
)

type ReturnsRepository interface {
	ListReturns(ctx context.Context) ([]*domain.ReturnRecord, error)
}

type returnsRepository struct {
	conn postgres.Conn
}

func NewReturnsRepository(conn postgres.Conn) ReturnsRepository {
	return &returnsRepository{
		conn: conn,
	}
}

// ListReturns lê a view de devoluções inteira, pelo mesmo motivo do
// ListInvoices: a data de emissão da NFD é texto na view legada.
func (r *returnsRepository) ListReturns(ctx context.Context) ([]*domain.ReturnRecord, error) {
	query, args, err := squirrel.
		Select("quantidade", "valor_total", "nf", "emissao_nfd", "cod_vendedor", "nome_vendedor").
		From(returnsView).
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
		return nil, fmt.Errorf("erro ao consultar %s: %w", returnsView, err)
	}
	defer rows.Close()

	records := make([]*domain.ReturnRecord, 0)
	for rows.Next() {
		record, err := r.scanReturn(rows, len(records)+1)
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

func (r *returnsRepository) scanReturn(rows *sql.Rows, line int) (*domain.ReturnRecord, error) {
	var (
		quantity        sql.NullInt64
		totalValue      sql.NullString
		invoiceNumber   sql.NullString
		emission        sql.NullString
		salespersonCode sql.NullString
		salespersonName sql.NullString
	)

	err := rows.Scan(
		&quantity,
		&totalValue,
		&invoiceNumber,
		&emission,
		&salespersonCode,
		&salespersonName,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear %s: %w", returnsView, err)
	}

	if !quantity.Valid {
		return nil, fmt.Errorf("%w: quantidade nula em %s (linha %d)", ErrSourceData, returnsView, line)
	}

	if !totalValue.Valid {
		return nil, fmt.Errorf("%w: valor_total nulo em %s (linha %d)", ErrSourceData, returnsView, line)
	}

	value, err := utils.ParseMoney(totalValue.String)
	if err != nil {
		return nil, fmt.Errorf("%w: valor_total %q em %s (linha %d)", ErrSourceData, totalValue.String, returnsView, line)
	}

	record := &domain.ReturnRecord{
		Quantity:        int(quantity.Int64),
		TotalValue:      value,
		InvoiceNumber:   invoiceNumber.String,
		SalespersonCode: salespersonCode.String,
		SalespersonName: salespersonName.String,
	}

	if emission.Valid {
		record.EmissionDate = utils.ParseViewDate(emission.String)
	}

	return record, nil
}
