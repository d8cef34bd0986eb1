package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-pulse-api/internal/config"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reporting"
)

type stubGenerator struct {
	mu         sync.Mutex
	report     *domain.GeneratedReport
	err        error
	gotRequest *reporting.GenerateRequest
}

func (s *stubGenerator) Generate(request reporting.GenerateRequest) (*domain.GeneratedReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gotRequest = &request

	return s.report, s.err
}

func reportSyncConfig(enabled bool) *config.Config {
	return &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule: "0 7 * * *",
			Enabled:      enabled,
		},
	}
}

func TestReportSyncStartDisabled(t *testing.T) {
	service := NewReportSyncService(&stubGenerator{}, reportSyncConfig(false))

	err := service.Start(context.Background())

	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
}

func TestReportSyncGeneratesYesterdayCloseout(t *testing.T) {
	generator := &stubGenerator{
		report: &domain.GeneratedReport{Day: "2024-03-01", TemplateID: "dailyCloseout"},
	}

	service := NewReportSyncService(generator, reportSyncConfig(true))

	service.generateDailyReport()

	assert.NotNil(t, generator.gotRequest)
	assert.Equal(t, scheduledReportUserID, generator.gotRequest.UserID)

	// O relatório agendado fecha o dia anterior
	assert.NotNil(t, generator.gotRequest.Day)
	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), generator.gotRequest.Day.Format(time.DateOnly))

	template := generator.gotRequest.Template
	assert.NotNil(t, template)
	assert.Equal(t, "dailyCloseout", template.ID)
	assert.NotEmpty(t, template.Blocks)
	assert.Equal(t, domain.BlockHeader, template.Blocks[0].Type)

	status := service.GetStatus()
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestReportSyncStatusConcorrenteComRodada(t *testing.T) {
	generator := &stubGenerator{
		report: &domain.GeneratedReport{Day: "2024-03-01", TemplateID: "dailyCloseout"},
	}

	service := NewReportSyncService(generator, reportSyncConfig(true))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			service.generateDailyReport()
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

func TestReportSyncGenerateError(t *testing.T) {
	generator := &stubGenerator{err: assert.AnError}

	service := NewReportSyncService(generator, reportSyncConfig(true))

	service.generateDailyReport()

	status := service.GetStatus()
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
