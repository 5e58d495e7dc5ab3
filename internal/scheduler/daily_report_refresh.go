package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-faturamento-api/internal/config"
	"github.com/vfg2006/painel-faturamento-api/internal/domain"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/reporting"
	"github.com/vfg2006/painel-faturamento-api/pkg/utils"
)

// DailyReportRefreshConfig representa a configuração do agendador do painel
type DailyReportRefreshConfig struct {
	IntervalSeconds int
	RefreshEnabled  bool
	Timezone        string
}

// ReportSnapshot é o último retrato publicado para o painel. Quando um
// ciclo falha, o relatório anterior permanece e LastError explica a falha.
type ReportSnapshot struct {
	Report      *domain.DailyReport
	CycleID     string
	RefreshedAt time.Time
	LastError   string
	FailedAt    time.Time
}

// DailyReportRefreshService gerencia o agendamento e a execução da
// atualização periódica do relatório diário
type DailyReportRefreshService struct {
	scheduler     *gocron.Scheduler
	config        DailyReportRefreshConfig
	reportService reporting.Reporter
	location      *time.Location

	// refreshMutex serializa os ciclos: um gatilho que chega no meio de um
	// ciclo espera a vez, nunca roda em paralelo
	refreshMutex sync.Mutex

	stateMutex             sync.RWMutex
	refreshRunning         bool
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	snapshot               ReportSnapshot
}

// NewDailyReportRefreshService cria uma nova instância do serviço de
// atualização do relatório diário
func NewDailyReportRefreshService(
	reportService reporting.Reporter,
	appConfig *config.Config,
) *DailyReportRefreshService {
	// Criar a configuração com base na config global
	refreshConfig := DailyReportRefreshConfig{
		IntervalSeconds: appConfig.Report.RefreshIntervalSeconds,
		RefreshEnabled:  appConfig.Report.RefreshEnabled,
		Timezone:        appConfig.Report.Timezone,
	}

	location, err := time.LoadLocation(refreshConfig.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso %q não reconhecido, usando o fuso local", refreshConfig.Timezone)
		location = time.Local
	}

	// Criar o agendador no fuso do painel
	scheduler := gocron.NewScheduler(location)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": refreshConfig.IntervalSeconds,
		"refresh_enabled":  refreshConfig.RefreshEnabled,
		"timezone":         location.String(),
	}).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportRefreshService{
		scheduler:     scheduler,
		config:        refreshConfig,
		reportService: reportService,
		location:      location,
	}
}

// Start inicia o agendador
func (s *DailyReportRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Atualização periódica do relatório diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).
		Info("Iniciando agendador de atualização do relatório diário")

	// Agendar a atualização do relatório
	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.refreshDailyReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do relatório diário: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDailyReport roda um ciclo completo: consulta as views, agrega o
// dia e publica o retrato novo. Uma falha registra o erro no snapshot e
// nunca impede o ciclo seguinte de rodar.
func (s *DailyReportRefreshService) refreshDailyReport() {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	cycleID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador do ciclo de atualização")
		cycleID = "sem-id"
	}

	startTime := time.Now()
	s.setRunning(true, startTime)

	defer func() {
		s.setRunning(false, startTime)
	}()

	today := time.Now().In(s.location)

	logrus.WithFields(logrus.Fields{
		"cycle_id": cycleID,
		"date":     today.Format(time.DateOnly),
	}).Info("Iniciando ciclo de atualização do relatório diário")

	report, err := s.reportService.GetDailyReport(context.Background(), today)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"cycle_id": cycleID,
			"error":    err.Error(),
		}).Error("Erro ao atualizar o relatório diário")

		s.recordFailure(cycleID, err)
		return
	}

	s.publish(report, cycleID)

	logrus.WithFields(logrus.Fields{
		"cycle_id":   cycleID,
		"vendedores": len(report.Summaries),
		"duration":   time.Since(startTime).String(),
	}).Info("Ciclo de atualização do relatório diário concluído")

	logrus.Debug("Totais publicados: ", utils.PrettyJson(report.Totals))
}

func (s *DailyReportRefreshService) setRunning(running bool, startTime time.Time) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.refreshRunning = running
	if running {
		s.lastRefreshStartedAt = startTime
	} else {
		s.lastRefreshCompletedAt = time.Now()
	}
}

func (s *DailyReportRefreshService) publish(report *domain.DailyReport, cycleID string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.snapshot = ReportSnapshot{
		Report:      report,
		CycleID:     cycleID,
		RefreshedAt: time.Now(),
	}
}

func (s *DailyReportRefreshService) recordFailure(cycleID string, err error) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	// Mantém o último relatório bom no ar e anota a falha por cima
	s.snapshot.CycleID = cycleID
	s.snapshot.LastError = err.Error()
	s.snapshot.FailedAt = time.Now()
}

// Snapshot devolve o último retrato publicado do relatório
func (s *DailyReportRefreshService) Snapshot() ReportSnapshot {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	return s.snapshot
}

// Location devolve o fuso em que o painel calcula o dia de referência
func (s *DailyReportRefreshService) Location() *time.Location {
	return s.location
}

// TriggerManualRefresh inicia manualmente um ciclo de atualização. Se um
// ciclo estiver em andamento, o novo espera na fila.
func (s *DailyReportRefreshService) TriggerManualRefresh() {
	logrus.Info("Iniciando atualização manual do relatório diário")
	go s.refreshDailyReport()
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportRefreshService) GetStatus() map[string]any {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_interval_seconds":  s.config.IntervalSeconds,
		"refresh_timezone":          s.location.String(),
		"refresh_running":           s.refreshRunning,
		"last_refresh_cycle_id":     s.snapshot.CycleID,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        s.snapshot.LastError,
	}
}
