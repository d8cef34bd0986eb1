package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-pulse-api/internal/config"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

type stubReconciler struct {
	mu         sync.Mutex
	result     *domain.MappingSyncResult
	err        error
	gotFilters *domain.MetricsFilters
}

func (s *stubReconciler) AutoMap(filters *domain.MetricsFilters) (*domain.MappingSyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gotFilters = filters

	return s.result, s.err
}

func (s *stubReconciler) SaveManualMapping(crmMeetingID, recordingRef string) (*domain.MeetingMapping, error) {
	return nil, nil
}

func (s *stubReconciler) ListMappings(crmMeetingIDs []string) (map[string]*domain.MeetingMapping, error) {
	return nil, nil
}

func mappingSyncConfig(enabled bool) *config.Config {
	return &config.Config{
		MappingSync: config.MappingSync{
			CronSchedule: "0 3 * * *",
			LookbackDays: 7,
			Enabled:      enabled,
		},
	}
}

func TestMappingSyncStartDisabled(t *testing.T) {
	service := NewMappingSyncService(&stubReconciler{}, mappingSyncConfig(false))

	err := service.Start(context.Background())

	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
}

func TestMappingSyncRun(t *testing.T) {
	reconciler := &stubReconciler{
		result: &domain.MappingSyncResult{Scanned: 4, Mapped: 2, Skipped: 2},
	}

	service := NewMappingSyncService(reconciler, mappingSyncConfig(true))

	service.syncMappings()

	// A janela da rodada cobre os dias de lookback configurados
	assert.NotNil(t, reconciler.gotFilters)
	assert.NotNil(t, reconciler.gotFilters.StartDate)
	assert.NotNil(t, reconciler.gotFilters.EndDate)

	window := reconciler.gotFilters.EndDate.Sub(*reconciler.gotFilters.StartDate)
	assert.InDelta(t, (7 * 24 * time.Hour).Hours(), window.Hours(), 1)

	status := service.GetStatus()
	assert.Equal(t, reconciler.result, status["last_result"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestMappingSyncRunErrorKeepsLastResult(t *testing.T) {
	reconciler := &stubReconciler{err: assert.AnError}

	service := NewMappingSyncService(reconciler, mappingSyncConfig(true))

	service.syncMappings()

	status := service.GetStatus()
	assert.Nil(t, status["last_result"])
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestMappingSyncStatusConcorrenteComRodada(t *testing.T) {
	reconciler := &stubReconciler{
		result: &domain.MappingSyncResult{Scanned: 1, Mapped: 1},
	}

	service := NewMappingSyncService(reconciler, mappingSyncConfig(true))

	// GetStatus lê os campos da última rodada enquanto outra rodada os
	// escreve; com -race isso pega leituras fora do mutex.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			service.syncMappings()
		}()
		go func() {
			defer wg.Done()
			_ = service.GetStatus()
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestMappingSyncSkipsWhenAlreadyRunning(t *testing.T) {
	reconciler := &stubReconciler{}

	service := &MappingSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		reconciler:  reconciler,
		syncRunning: true,
	}

	service.syncMappings()

	assert.Nil(t, reconciler.gotFilters)
}
