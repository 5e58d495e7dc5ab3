package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/painel-faturamento-api/internal/domain"
)

// Reporter define a interface para montar o relatório diário do painel
type Reporter interface {
	// GetDailyReport monta o retrato do dia de referência: totais, quadro
	// por vendedor e contadores de linhas descartadas
	GetDailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error)
}
