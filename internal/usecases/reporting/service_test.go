package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type stubAggregator struct {
	pulses []*domain.DailyPulse
	err    error

	gotFilters    *domain.MetricsFilters
	gotOwnerCount int
}

func (s *stubAggregator) MagicFormula(filters *domain.MetricsFilters, ownerCount int) ([]*domain.DailyPulse, error) {
	s.gotFilters = filters
	s.gotOwnerCount = ownerCount

	return s.pulses, s.err
}

type stubMeetingLister struct {
	meetings []*domain.EnrichedMeeting
	err      error
	called   bool
}

func (s *stubMeetingLister) ListMeetings(filters *domain.MetricsFilters) ([]*domain.EnrichedMeeting, error) {
	s.called = true

	return s.meetings, s.err
}

func pulseFixture(date string) *domain.DailyPulse {
	return &domain.DailyPulse{
		Date:    date,
		Scope:   domain.ScopeIndividual,
		Metrics: &domain.DailyMetrics{Date: date},
		Goals: []*domain.GoalStatus{
			{Metric: "meetings_held", Value: 0, Target: 5, PercentToGoal: 0},
		},
	}
}

func TestGenerateRequiresUserID(t *testing.T) {
	service := NewService(&stubAggregator{}, &stubMeetingLister{}, nil)

	report, err := service.Generate(GenerateRequest{})

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestGenerateUnknownTemplate(t *testing.T) {
	service := NewService(&stubAggregator{}, &stubMeetingLister{}, nil)

	report, err := service.Generate(GenerateRequest{
		UserID:     "user-1",
		TemplateID: "weeklyRecap",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "template desconhecido")
	assert.Nil(t, report)
}

func TestGenerateCustomTemplateNeedsBlocks(t *testing.T) {
	service := NewService(&stubAggregator{}, &stubMeetingLister{}, nil)

	report, err := service.Generate(GenerateRequest{
		UserID:   "user-1",
		Template: &domain.ReportTemplate{ID: "empty", Name: "Vazio"},
	})

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestGenerateDailyPulseNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem expectativa de SaveOrUpdate: o pulso diário ad-hoc nunca é persistido
	mockRepo := mocks.NewMockGeneratedReportRepository(ctrl)

	aggregator := &stubAggregator{pulses: []*domain.DailyPulse{pulseFixture("2024-03-01")}}
	lister := &stubMeetingLister{}

	service := NewService(aggregator, lister, mockRepo)

	day := time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local)
	report, err := service.Generate(GenerateRequest{
		UserID: "user-1",
		Day:    &day,
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", report.UserID)
	assert.Equal(t, domain.DailySalesPulseTemplateID, report.TemplateID)
	assert.Equal(t, "2024-03-01", report.Day)
	assert.Contains(t, report.Text, "# Pulso diário de vendas — 2024-03-01")

	// Sem owners selecionados o pulso diário assume o tamanho padrão do time
	assert.Equal(t, defaultTeamSize, aggregator.gotOwnerCount)

	// O filtro cobre exatamente o dia pedido
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), *aggregator.gotFilters.StartDate)
	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 0, time.Local), *aggregator.gotFilters.EndDate)

	// O template embutido tem bloco de resumo de reuniões
	assert.True(t, lister.called)
}

func TestGenerateCustomTemplatePersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGeneratedReportRepository(ctrl)
	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(report *domain.GeneratedReport) error {
			assert.Equal(t, "user-2", report.UserID)
			assert.Equal(t, "closeout", report.TemplateID)
			assert.Equal(t, "2024-03-01", report.Day)
			assert.NotNil(t, report.Snapshot)

			return nil
		})

	aggregator := &stubAggregator{pulses: []*domain.DailyPulse{pulseFixture("2024-03-01")}}
	lister := &stubMeetingLister{}

	service := NewService(aggregator, lister, mockRepo)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	report, err := service.Generate(GenerateRequest{
		UserID: "user-2",
		Day:    &day,
		Template: &domain.ReportTemplate{
			ID:   "closeout",
			Name: "Fechamento",
			Blocks: []domain.ReportBlockDef{
				{Type: domain.BlockHeader, Text: "Fechamento"},
				{Type: domain.BlockMagicFormula},
			},
		},
		OwnerIDs: []string{"owner-1"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, aggregator.gotOwnerCount)

	// Template sem bloco de resumo não lista reuniões
	assert.False(t, lister.called)
	assert.Contains(t, report.Text, "# Fechamento — 2024-03-01")
}

func TestGenerateMeetingsErrorDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGeneratedReportRepository(ctrl)

	aggregator := &stubAggregator{pulses: []*domain.DailyPulse{pulseFixture("2024-03-01")}}
	lister := &stubMeetingLister{err: assert.AnError}

	service := NewService(aggregator, lister, mockRepo)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	report, err := service.Generate(GenerateRequest{UserID: "user-1", Day: &day})

	assert.NoError(t, err)
	assert.Contains(t, report.Text, "Nenhuma reunião no dia.")
}

func TestGenerateAggregatorErrorPropagates(t *testing.T) {
	service := NewService(&stubAggregator{err: assert.AnError}, &stubMeetingLister{}, nil)

	report, err := service.Generate(GenerateRequest{UserID: "user-1"})

	assert.Error(t, err)
	assert.Nil(t, report)
}
