package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/domain"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-payroll-api/pkg/utils"
)

const defaultLookbackDays = 1

// DailySalesReportConfig representa a configuração do relatório diário de vendas
type DailySalesReportConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// DailySalesReport é o resultado da última execução. Fica só em memória.
type DailySalesReport struct {
	ID          string                       `json:"id"`
	StoreID     string                       `json:"storeId"`
	Dates       []string                     `json:"dates"`
	Results     map[string]domain.DateResult `json:"results,omitempty"`
	Error       string                       `json:"error,omitempty"`
	StartedAt   time.Time                    `json:"startedAt"`
	CompletedAt time.Time                    `json:"completedAt"`
}

// DailySalesReportService agenda a agregação dos últimos dias da loja configurada
type DailySalesReportService struct {
	scheduler  *gocron.Scheduler
	config     DailySalesReportConfig
	aggregator aggregating.Aggregator
	settings   config.SettingsProvider
	now        func() time.Time

	syncRunning bool
	syncMutex   sync.Mutex
	lastReport  *DailySalesReport
}

// NewDailySalesReportService cria o serviço a partir da configuração global
func NewDailySalesReportService(
	aggregator aggregating.Aggregator,
	settings config.SettingsProvider,
	appConfig *config.Config,
) *DailySalesReportService {
	reportConfig := DailySalesReportConfig{
		CronSchedule: appConfig.DailySalesReport.CronSchedule,
		LookbackDays: appConfig.DailySalesReport.LookbackDays,
		Enabled:      appConfig.DailySalesReport.Enabled,
	}
	if reportConfig.LookbackDays <= 0 {
		reportConfig.LookbackDays = defaultLookbackDays
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reportConfig.CronSchedule,
		"lookback_days":  reportConfig.LookbackDays,
		"report_enabled": reportConfig.Enabled,
	}).Info("Configuração do relatório diário de vendas carregada")

	return &DailySalesReportService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     reportConfig,
		aggregator: aggregator,
		settings:   settings,
		now:        time.Now,
	}
}

// Start agenda o relatório e para o agendador quando o contexto for cancelado
func (s *DailySalesReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório diário de vendas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório diário de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule daily sales report: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório diário de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// run executa uma vez; uma execução em andamento faz as demais serem ignoradas
func (s *DailySalesReportService) run(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório diário de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report := s.buildReport(ctx)

	s.syncMutex.Lock()
	s.lastReport = report
	s.syncMutex.Unlock()
}

func (s *DailySalesReportService) buildReport(ctx context.Context) *DailySalesReport {
	startedAt := s.now()

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id do relatório, usando o horário de início")
		id = startedAt.Format("20060102150405")
	}

	report := &DailySalesReport{
		ID:        id,
		Dates:     utils.LookbackDates(startedAt, s.config.LookbackDays),
		StartedAt: startedAt,
	}

	logger := logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"dates":     report.Dates,
	})
	logger.Info("Iniciando relatório diário de vendas")

	settings, err := s.settings.MoyskladSettings(ctx)
	if err == nil && !settings.HasStore() {
		err = aggregating.ErrStoreRequired
	}
	if err != nil {
		logger.WithError(err).Error("Configurações do MoySklad indisponíveis para o relatório diário")
		report.Error = err.Error()
		report.CompletedAt = s.now()
		return report
	}

	report.StoreID = settings.StoreID

	results, err := s.aggregator.AggregateDates(ctx, settings.AccessToken, settings.StoreID, report.Dates)
	if err != nil {
		logger.WithError(err).Error("Erro ao agregar vendas do relatório diário")
		report.Error = err.Error()
		report.CompletedAt = s.now()
		return report
	}

	report.Results = results
	report.CompletedAt = s.now()

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}

	logger.WithFields(logrus.Fields{
		"store_id":     report.StoreID,
		"duration":     report.CompletedAt.Sub(startedAt).String(),
		"failed_dates": failed,
	}).Info("Relatório diário de vendas concluído")

	return report
}

// TriggerManualSync dispara o relatório fora do horário agendado
func (s *DailySalesReportService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Relatório diário de vendas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando relatório diário de vendas manual")
	go s.run(context.Background())

	return true
}

// LastReport retorna a última execução concluída, ou nil
func (s *DailySalesReportService) LastReport() *DailySalesReport {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.lastReport
}

// GetStatus retorna o status atual do agendador
func (s *DailySalesReportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"report_enabled":       s.config.Enabled,
		"report_cron":          s.config.CronSchedule,
		"report_lookback_days": s.config.LookbackDays,
		"report_running":       s.syncRunning,
	}

	if s.lastReport != nil {
		status["last_report_id"] = s.lastReport.ID
		status["last_report_started_at"] = s.lastReport.StartedAt
		status["last_report_completed_at"] = s.lastReport.CompletedAt
		status["last_report_error"] = s.lastReport.Error
	}

	return status
}
