package meetings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	graindomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/domain"
	grainmocks "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/mocks"
	hubspotmocks "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/mocks"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }

func float64Ptr(f float64) *float64 { return &f }

func TestListMeetingsEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockRecordings := grainmocks.NewMockGrainIntegrator(ctrl)
	mockMappings := mocks.NewMockMeetingMappingRepository(ctrl)

	start := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	outcome := "Qualified - Sold"

	mockCRM.EXPECT().
		ListMeetings(gomock.Any()).
		Return([]*domain.CRMMeeting{
			{
				ID:        "meet-1",
				Title:     "Demo Acme",
				StartTime: &start,
				Outcome:   &outcome,
				OwnerID:   stringPtr("owner-1"),
			},
		}, nil)

	mockCRM.EXPECT().
		ListOwners().
		Return([]*domain.Owner{
			{ID: "owner-1", FirstName: "Ana", LastName: "Souza"},
		}, nil)

	older := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mockCRM.EXPECT().
		MeetingDeals([]string{"meet-1"}).
		Return(map[string][]string{"meet-1": {"deal-old", "deal-new"}}, nil)

	mockCRM.EXPECT().
		GetDealsByIDs(gomock.Any()).
		Return([]*domain.Deal{
			{ID: "deal-old", UpdatedAt: &older, LeadSource: stringPtr("Outbound")},
			{ID: "deal-new", UpdatedAt: &newer, LeadSource: stringPtr("Inbound")},
		}, nil)

	mockCRM.EXPECT().
		MeetingContacts([]string{"meet-1"}).
		Return(map[string][]*domain.MeetingContact{
			"meet-1": {{ID: "contact-1", Email: stringPtr("lead@acme.com")}},
		}, nil)

	mockCRM.EXPECT().
		MeetingEngagements([]string{"meet-1"}).
		Return(map[string][]string{}, nil)

	mockMappings.EXPECT().
		ListByCRMMeetingIDs([]string{"meet-1"}).
		Return(map[string]*domain.MeetingMapping{
			"meet-1": {
				CRMMeetingID: "meet-1",
				RecordingID:  "rec-1",
				ShareURL:     stringPtr("https://grain.com/share/recording/rec-1/tok"),
			},
		}, nil)

	mockRecordings.EXPECT().
		GetCoachingFeedback("rec-1").
		Return(&graindomain.CoachingFeedback{RecordingID: "rec-1", Score: float64Ptr(8.5)}, nil)

	service := NewService(mockCRM, mockRecordings, mockMappings)

	enriched, err := service.ListMeetings(&domain.MetricsFilters{})

	assert.NoError(t, err)
	assert.Len(t, enriched, 1)

	meeting := enriched[0]
	assert.Equal(t, "meet-1", meeting.ID)
	assert.Equal(t, "Ana Souza", *meeting.OwnerName)

	// O negócio mais recente pela última modificação vence
	assert.Equal(t, "deal-new", *meeting.DealID)
	assert.Equal(t, "Inbound", *meeting.LeadSource)

	assert.Equal(t, "contact-1", meeting.PrimaryContact.ID)
	assert.Equal(t, "https://grain.com/share/recording/rec-1/tok", *meeting.RecordingURL)
	assert.Equal(t, 8.5, *meeting.CoachingScore)
	assert.Equal(t, domain.OutcomeQualifiedSold, meeting.OutcomeTag)
}

func TestListMeetingsEnrichmentDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockRecordings := grainmocks.NewMockGrainIntegrator(ctrl)
	mockMappings := mocks.NewMockMeetingMappingRepository(ctrl)

	mockCRM.EXPECT().
		ListMeetings(gomock.Any()).
		Return([]*domain.CRMMeeting{{ID: "meet-1", Title: "Demo"}}, nil)

	// Todos os enriquecimentos falham, a listagem segue
	mockCRM.EXPECT().ListOwners().Return(nil, assert.AnError)
	mockCRM.EXPECT().MeetingDeals(gomock.Any()).Return(nil, assert.AnError)
	mockCRM.EXPECT().MeetingContacts(gomock.Any()).Return(nil, assert.AnError)
	mockCRM.EXPECT().MeetingEngagements(gomock.Any()).Return(nil, assert.AnError)
	mockMappings.EXPECT().ListByCRMMeetingIDs(gomock.Any()).Return(nil, assert.AnError)

	// Sem resultado no CRM a cadeia de estratégias ainda tenta o detalhe
	mockCRM.EXPECT().GetMeetingByID("meet-1").Return(nil, assert.AnError)

	service := NewService(mockCRM, mockRecordings, mockMappings)

	enriched, err := service.ListMeetings(&domain.MetricsFilters{})

	assert.NoError(t, err)
	assert.Len(t, enriched, 1)
	assert.Nil(t, enriched[0].OwnerName)
	assert.Nil(t, enriched[0].DealID)
	assert.Nil(t, enriched[0].RecordingURL)
	assert.Equal(t, domain.OutcomeUnknown, enriched[0].OutcomeTag)
}

func TestListMeetingsAbortsOnCRMError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return(nil, assert.AnError)

	service := NewService(mockCRM, nil, nil)

	enriched, err := service.ListMeetings(&domain.MetricsFilters{})

	assert.Error(t, err)
	assert.Nil(t, enriched)
}

func TestResolveOutcomeStrategyChain(t *testing.T) {
	tests := []struct {
		name     string
		meeting  *domain.CRMMeeting
		batched  []string
		setup    func(mockCRM *hubspotmocks.MockHubSpotIntegrator)
		expected *string
	}{
		{
			name:    "Propriedade direta vence sem consultar o detalhe",
			meeting: &domain.CRMMeeting{ID: "meet-1", EngagementID: stringPtr("eng-1")},
			setup: func(mockCRM *hubspotmocks.MockHubSpotIntegrator) {
				mockCRM.EXPECT().GetEngagementOutcome("eng-1").Return(stringPtr("COMPLETED"), nil)
			},
			expected: stringPtr("COMPLETED"),
		},
		{
			name:    "Sem propriedade direta cai para o detalhe da reunião",
			meeting: &domain.CRMMeeting{ID: "meet-2"},
			setup: func(mockCRM *hubspotmocks.MockHubSpotIntegrator) {
				mockCRM.EXPECT().
					GetMeetingByID("meet-2").
					Return(&domain.CRMMeeting{ID: "meet-2", EngagementID: stringPtr("eng-2")}, nil)
				mockCRM.EXPECT().GetEngagementOutcome("eng-2").Return(stringPtr("NO_SHOW"), nil)
			},
			expected: stringPtr("NO_SHOW"),
		},
		{
			name:    "Detalhe falha e o lote resolve",
			meeting: &domain.CRMMeeting{ID: "meet-3"},
			batched: []string{"eng-3"},
			setup: func(mockCRM *hubspotmocks.MockHubSpotIntegrator) {
				mockCRM.EXPECT().GetMeetingByID("meet-3").Return(nil, assert.AnError)
				mockCRM.EXPECT().GetEngagementOutcome("eng-3").Return(stringPtr("CANCELED"), nil)
			},
			expected: stringPtr("CANCELED"),
		},
		{
			name:    "Erro no engagement tenta a próxima estratégia",
			meeting: &domain.CRMMeeting{ID: "meet-4", EngagementID: stringPtr("eng-4")},
			batched: []string{"eng-5"},
			setup: func(mockCRM *hubspotmocks.MockHubSpotIntegrator) {
				mockCRM.EXPECT().GetEngagementOutcome("eng-4").Return(nil, assert.AnError)
				mockCRM.EXPECT().GetMeetingByID("meet-4").Return(nil, nil)
				mockCRM.EXPECT().GetEngagementOutcome("eng-5").Return(stringPtr("RESCHEDULED"), nil)
			},
			expected: stringPtr("RESCHEDULED"),
		},
		{
			name:    "Nenhuma estratégia encontra engagement",
			meeting: &domain.CRMMeeting{ID: "meet-5"},
			setup: func(mockCRM *hubspotmocks.MockHubSpotIntegrator) {
				mockCRM.EXPECT().GetMeetingByID("meet-5").Return(nil, nil)
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
			tt.setup(mockCRM)

			service := &Service{crm: mockCRM}

			result := service.resolveOutcome(tt.meeting, tt.batched)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestUpdateOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)

	mockCRM.EXPECT().
		UpdateMeeting("meet-1", map[string]*string{"hs_meeting_outcome": stringPtr("No Show")}).
		Return(nil)

	service := NewService(mockCRM, nil, nil)

	err := service.UpdateOutcome("meet-1", stringPtr("No Show"))

	assert.NoError(t, err)
}

func TestUpdateOutcomeClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)

	mockCRM.EXPECT().
		UpdateMeeting("meet-1", map[string]*string{"hs_meeting_outcome": nil}).
		Return(nil)

	service := NewService(mockCRM, nil, nil)

	err := service.UpdateOutcome("meet-1", nil)

	assert.NoError(t, err)
}
