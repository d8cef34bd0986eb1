package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/internal/config"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reporting"
)

// Usuário dono dos relatórios gerados pelo agendador
const scheduledReportUserID = "scheduler"

// ReportSyncService agenda a geração diária do relatório do dia anterior
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	syncEnabled         bool
	generator           reporting.Generator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportSyncService(
	generator reporting.Generator,
	appConfig *config.Config,
) *ReportSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ReportSync.CronSchedule,
		"sync_enabled":  appConfig.ReportSync.Enabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.ReportSync.CronSchedule,
		syncEnabled:  appConfig.ReportSync.Enabled,
		generator:    generator,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.syncEnabled {
		logrus.Info("Geração agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de relatórios diários")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.generateDailyReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios diários")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReportSyncService) generateDailyReport() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatório já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	// O relatório agendado fecha o dia anterior com um snapshot persistido
	yesterday := time.Now().AddDate(0, 0, -1)

	template := &domain.ReportTemplate{
		ID:     "dailyCloseout",
		Name:   "Fechamento diário",
		Blocks: dailyCloseoutBlocks(),
	}

	report, err := s.generator.Generate(reporting.GenerateRequest{
		UserID:   scheduledReportUserID,
		Template: template,
		Day:      &yesterday,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar o relatório diário agendado")
		return
	}

	logrus.WithFields(logrus.Fields{
		"day":         report.Day,
		"template_id": report.TemplateID,
	}).Info("Relatório diário agendado gerado com sucesso")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

func dailyCloseoutBlocks() []domain.ReportBlockDef {
	return []domain.ReportBlockDef{
		{Type: domain.BlockHeader, Text: "Fechamento diário"},
		{Type: domain.BlockMagicFormula},
		{Type: domain.BlockDivider},
		{Type: domain.BlockBreakdown},
		{Type: domain.BlockMeetingsSummary},
	}
}

// TriggerManualSync inicia manualmente a geração do relatório diário
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do relatório diário")
	go s.generateDailyReport()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.syncEnabled,
		"sync_cron":              s.cronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
