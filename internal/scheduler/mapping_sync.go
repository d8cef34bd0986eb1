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
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reconciling"
)

// MappingSyncService agenda a reconciliação automática entre reuniões do CRM
// e gravações.
type MappingSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	lookbackDays        int
	syncEnabled         bool
	reconciler          reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.MappingSyncResult
}

func NewMappingSyncService(
	reconciler reconciling.Reconciler,
	appConfig *config.Config,
) *MappingSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.MappingSync.CronSchedule,
		"lookback_days": appConfig.MappingSync.LookbackDays,
		"sync_enabled":  appConfig.MappingSync.Enabled,
	}).Info("Configuração do agendador de mapeamento de gravações carregada")

	return &MappingSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.MappingSync.CronSchedule,
		lookbackDays: appConfig.MappingSync.LookbackDays,
		syncEnabled:  appConfig.MappingSync.Enabled,
		reconciler:   reconciler,
	}
}

// Start inicia o agendador
func (s *MappingSyncService) Start(ctx context.Context) error {
	if !s.syncEnabled {
		logrus.Info("Sincronização de mapeamento de gravações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de mapeamento de gravações")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.syncMappings()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar mapeamento de gravações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de mapeamento de gravações")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MappingSyncService) syncMappings() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Mapeamento de gravações já em andamento, ignorando")
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

	end := time.Now()
	start := end.AddDate(0, 0, -s.lookbackDays)

	logrus.WithFields(logrus.Fields{
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
	}).Info("Iniciando rodada de mapeamento automático de gravações")

	result, err := s.reconciler.AutoMap(&domain.MetricsFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro na rodada de mapeamento automático de gravações")
		return
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma rodada de mapeamento
func (s *MappingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Mapeamento de gravações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rodada manual de mapeamento de gravações")
	go s.syncMappings()
}

// GetStatus retorna o status atual do agendador
func (s *MappingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.syncEnabled,
		"sync_cron":              s.cronSchedule,
		"sync_lookback_days":     s.lookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
