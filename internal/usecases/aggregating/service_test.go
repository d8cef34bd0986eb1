package aggregating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	hubspotmocks "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/mocks"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/targeting"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time { return &t }

func stringPtr(s string) *string { return &s }

func singleDayFilters(day time.Time) *domain.MetricsFilters {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	return &domain.MetricsFilters{StartDate: &start, EndDate: &end}
}

func TestMagicFormulaSingleDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	filters := singleDayFilters(day)

	meetingAt := func(hour int, outcome string) *domain.CRMMeeting {
		return &domain.CRMMeeting{
			ID:        "m-" + outcome,
			StartTime: timePtr(time.Date(2024, 3, 1, hour, 0, 0, 0, time.Local)),
			Outcome:   stringPtr(outcome),
		}
	}

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return([]*domain.CRMMeeting{
		meetingAt(9, "Qualified - Sold"),
		meetingAt(11, "No Show"),
	}, nil)

	mockCRM.EXPECT().ListDeals(gomock.Any()).Return([]*domain.Deal{
		{
			ID:        "d-1",
			Amount:    1200.0,
			CloseDate: timePtr(time.Date(2024, 3, 1, 17, 0, 0, 0, time.Local)),
			Won:       true,
		},
	}, nil)

	mockCRM.EXPECT().ListCalls(gomock.Any()).Return([]*domain.Call{
		{ID: "c-1", Status: "COMPLETED", Timestamp: timePtr(time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local))},
		{ID: "c-2", Status: "NO_ANSWER", Timestamp: timePtr(time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local))},
	}, nil)

	mockCRM.EXPECT().ListEmails(gomock.Any()).Return([]*domain.Email{
		{ID: "e-1", Status: "REPLIED", Timestamp: timePtr(time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local))},
	}, nil)

	mockTargetRepo.EXPECT().FindGlobal().Return(nil, nil)

	service := NewService(mockCRM, targeting.NewService(mockTargetRepo))

	pulses, err := service.MagicFormula(filters, 0)

	assert.NoError(t, err)
	assert.Len(t, pulses, 1)

	pulse := pulses[0]
	assert.Equal(t, "2024-03-01", pulse.Date)
	assert.Equal(t, domain.ScopeIndividual, pulse.Scope)

	metrics := pulse.Metrics
	assert.Equal(t, 2, metrics.MeetingsBooked)
	assert.Equal(t, 1, metrics.NoShows)
	assert.Equal(t, 1, metrics.MeetingsHeld)
	assert.Equal(t, 1, metrics.QualifiedOpps)
	assert.Equal(t, 1, metrics.QualifiedSold)
	assert.Equal(t, 1, metrics.Conversions)
	assert.Equal(t, 1200.0, metrics.Revenue)
	assert.Equal(t, 1200.0, metrics.ASP)
	assert.Equal(t, 1, metrics.CallsConnected)
	assert.Equal(t, 1, metrics.EmailsReplied)

	// Metas padrão: 5 realizadas / 3 qualificadas / 2 conversões / $600 de receita
	assert.False(t, pulse.AllGoalsMet)
	for _, goal := range pulse.Goals {
		switch goal.Metric {
		case "meetings_held":
			assert.Equal(t, 5.0, goal.Target)
			assert.Equal(t, 0.2, goal.PercentToGoal)
			assert.False(t, goal.Met)
		case "revenue":
			assert.Equal(t, 600.0, goal.Target)
			assert.Equal(t, 2.0, goal.PercentToGoal)
			assert.True(t, goal.Met)
		}
	}
}

func TestMagicFormulaEmitsEmptyDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 3, 23, 59, 59, 0, time.Local)
	filters := &domain.MetricsFilters{StartDate: &start, EndDate: &end}

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListDeals(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListCalls(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListEmails(gomock.Any()).Return(nil, nil)
	mockTargetRepo.EXPECT().FindGlobal().Return(nil, nil)

	service := NewService(mockCRM, targeting.NewService(mockTargetRepo))

	pulses, err := service.MagicFormula(filters, 0)

	assert.NoError(t, err)
	assert.Len(t, pulses, 3)

	for _, pulse := range pulses {
		assert.Equal(t, 0, pulse.Metrics.MeetingsBooked)
		assert.Equal(t, 0.0, pulse.Metrics.Revenue)
		assert.False(t, pulse.AllGoalsMet)
	}
	assert.Equal(t, "2024-03-01", pulses[0].Date)
	assert.Equal(t, "2024-03-03", pulses[2].Date)
}

func TestMagicFormulaTeamScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	filters := singleDayFilters(day)
	filters.OwnerIDs = []string{"owner-1", "owner-2", "owner-3"}

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListDeals(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListCalls(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListEmails(gomock.Any()).Return(nil, nil)
	mockTargetRepo.EXPECT().FindGlobal().Return(nil, nil)

	service := NewService(mockCRM, targeting.NewService(mockTargetRepo))

	pulses, err := service.MagicFormula(filters, 0)

	assert.NoError(t, err)
	assert.Len(t, pulses, 1)

	pulse := pulses[0]
	assert.Equal(t, domain.ScopeTeamTotal, pulse.Scope)
	assert.Equal(t, 3, pulse.OwnerCount)

	// Meta padrão escalada por três owners
	for _, goal := range pulse.Goals {
		if goal.Metric == "meetings_held" {
			assert.Equal(t, 15.0, goal.Target)
		}
	}
}

func TestMagicFormulaDealsErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)

	filters := singleDayFilters(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListDeals(gomock.Any()).Return(nil, errors.New("rate limit"))
	mockCRM.EXPECT().ListCalls(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListEmails(gomock.Any()).Return(nil, nil)

	service := NewService(mockCRM, targeting.NewService(mockTargetRepo))

	_, err := service.MagicFormula(filters, 0)

	assert.Error(t, err)
}

func TestMagicFormulaCallsErrorDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)

	filters := singleDayFilters(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListDeals(gomock.Any()).Return(nil, nil)
	mockCRM.EXPECT().ListCalls(gomock.Any()).Return(nil, errors.New("timeout"))
	mockCRM.EXPECT().ListEmails(gomock.Any()).Return(nil, errors.New("timeout"))
	mockTargetRepo.EXPECT().FindGlobal().Return(nil, nil)

	service := NewService(mockCRM, targeting.NewService(mockTargetRepo))

	pulses, err := service.MagicFormula(filters, 0)

	assert.NoError(t, err)
	assert.Len(t, pulses, 1)
	assert.Equal(t, 0, pulses[0].Metrics.CallsConnected)
	assert.Equal(t, 0, pulses[0].Metrics.EmailsReplied)
}

func TestFinalizeDayClampsHeld(t *testing.T) {
	metrics := &domain.DailyMetrics{
		MeetingsBooked: 2,
		NoShows:        2,
		Canceled:       1,
	}

	finalizeDay(metrics)

	assert.Equal(t, 0, metrics.MeetingsHeld)
}

func TestGoalStatusZeroTarget(t *testing.T) {
	// Meta zero nunca divide: progresso fica em 0, mas a meta conta como
	// atingida (qualquer valor >= 0)
	status := goalStatus("conversions", 3, 0)

	assert.Equal(t, 0.0, status.PercentToGoal)
	assert.True(t, status.Met)

	status = goalStatus("revenue", 450, 600)

	assert.Equal(t, 0.75, status.PercentToGoal)
	assert.False(t, status.Met)
}
