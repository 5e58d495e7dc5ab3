package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/painel-faturamento-api/infrastructure/repository"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/pkg/apiErrors"
	"github.com/vfg2006/painel-faturamento-api/pkg/log"
	"github.com/vfg2006/painel-faturamento-api/pkg/utils"
)

const (
	salesCacheKind   = "vendas"
	returnsCacheKind = "devolucoes"
)

type Service struct {
	salesRepo   repository.SalesRepository
	returnsRepo repository.ReturnsRepository
	cacheTTL    time.Duration
	cache       *fetchCache
	now         func() time.Time
}

type Option func(*Service)

// WithCache liga a memorização das consultas às views pelo TTL informado.
// TTL zero ou negativo deixa o serviço sem cache.
func WithCache(ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// WithClock troca o relógio do serviço, usado nos testes
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	salesRepo repository.SalesRepository,
	returnsRepo repository.ReturnsRepository,
	opts ...Option,
) Reporter {
	s := &Service{
		salesRepo:   salesRepo,
		returnsRepo: returnsRepo,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cacheTTL > 0 {
		s.cache = newFetchCache(s.cacheTTL, s.now)
	}

	return s
}

// GetDailyReport monta o relatório do dia de referência. As duas views são
// lidas em sequência na mesma conexão compartilhada, nunca em paralelo.
func (s *Service) GetDailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	sales, err := s.fetchSales(ctx, date)
	if err != nil {
		return nil, err
	}

	returns, err := s.fetchReturns(ctx, date)
	if err != nil {
		return nil, err
	}

	daySales, droppedSales := FilterSalesByDay(sales, date)
	dayReturns, droppedReturns := FilterReturnsByDay(returns, date)

	if droppedSales > 0 || droppedReturns > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"vendas_descartadas":     droppedSales,
			"devolucoes_descartadas": droppedReturns,
		}).Warn("Linhas sem data legível foram descartadas do relatório")
	}

	totals, summaries := Aggregate(daySales, dayReturns)

	return &domain.DailyReport{
		ReferenceDate: date,
		Weekday:       utils.WeekdayPTBR(date),
		Totals:        totals,
		Summaries:     summaries,
		Dropped: domain.DroppedRecords{
			Sales:   droppedSales,
			Returns: droppedReturns,
		},
		GeneratedAt: s.now(),
	}, nil
}

func (s *Service) fetchSales(ctx context.Context, date time.Time) ([]*domain.SaleRecord, error) {
	key := cacheKey(salesCacheKind, date)

	if s.cache != nil {
		if cached, ok := s.cache.get(key); ok {
			return cached.([]*domain.SaleRecord), nil
		}
	}

	records, err := s.salesRepo.ListInvoices(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSourceData) {
			return nil, NewReportError(err, apiErrors.ErrReportSourceData, "Valores ilegíveis na view de vendas")
		}
		return nil, NewReportError(err, apiErrors.ErrReportSourceUnavailable, "Falha ao consultar a view de vendas")
	}

	if s.cache != nil {
		s.cache.put(key, records)
	}

	return records, nil
}

func (s *Service) fetchReturns(ctx context.Context, date time.Time) ([]*domain.ReturnRecord, error) {
	key := cacheKey(returnsCacheKind, date)

	if s.cache != nil {
		if cached, ok := s.cache.get(key); ok {
			return cached.([]*domain.ReturnRecord), nil
		}
	}

	records, err := s.returnsRepo.ListReturns(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSourceData) {
			return nil, NewReportError(err, apiErrors.ErrReportSourceData, "Valores ilegíveis na view de devoluções")
		}
		return nil, NewReportError(err, apiErrors.ErrReportSourceUnavailable, "Falha ao consultar a view de devoluções")
	}

	if s.cache != nil {
		s.cache.put(key, records)
	}

	return records, nil
}

func cacheKey(kind string, date time.Time) string {
	return kind + "|" + date.Format(time.DateOnly)
}
