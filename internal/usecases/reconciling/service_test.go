package reconciling

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

func windowFilters() *domain.MetricsFilters {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)

	return &domain.MetricsFilters{StartDate: &start, EndDate: &end}
}

func recordingWith(id, email string, start *time.Time) graindomain.Recording {
	return graindomain.Recording{
		ID:    id,
		Start: start,
		Participants: []graindomain.Participant{
			{Email: email, Scope: "external"},
		},
	}
}

func TestAutoMapRequiresDates(t *testing.T) {
	service := &Service{}

	_, err := service.AutoMap(&domain.MetricsFilters{})

	assert.Error(t, err)
}

func TestAutoMapSingleCandidateMatchesRegardlessOfTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockGrain := grainmocks.NewMockGrainIntegrator(ctrl)
	mockRepo := mocks.NewMockMeetingMappingRepository(ctrl)

	meetingStart := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	meeting := &domain.CRMMeeting{ID: "meet-1", StartTime: &meetingStart}

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return([]*domain.CRMMeeting{meeting}, nil)
	mockRepo.EXPECT().ListByCRMMeetingIDs([]string{"meet-1"}).Return(map[string]*domain.MeetingMapping{}, nil)
	mockCRM.EXPECT().MeetingContacts([]string{"meet-1"}).Return(map[string][]*domain.MeetingContact{
		"meet-1": {{ID: "contact-1", Email: stringPtr("Lead@Example.com ")}},
	}, nil)

	// Horário bem distante do início da reunião: com candidato único não importa
	farStart := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	mockGrain.EXPECT().ListRecordings(gomock.Any(), gomock.Any(), gomock.Any()).Return([]graindomain.Recording{
		recordingWith("rec-1", "lead@example.com", &farStart),
	}, nil)

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(mapping *domain.MeetingMapping) error {
		assert.Equal(t, "meet-1", mapping.CRMMeetingID)
		assert.Equal(t, "rec-1", mapping.RecordingID)
		assert.Equal(t, domain.MappingSourceAuto, mapping.Source)
		return nil
	})

	service := NewService(mockCRM, mockGrain, mockRepo)

	result, err := service.AutoMap(windowFilters())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.Mapped)
	assert.Equal(t, 0, result.Skipped)
}

func TestAutoMapMultipleCandidatesPicksNearestStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockGrain := grainmocks.NewMockGrainIntegrator(ctrl)
	mockRepo := mocks.NewMockMeetingMappingRepository(ctrl)

	meetingStart := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	meeting := &domain.CRMMeeting{ID: "meet-1", StartTime: &meetingStart}

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return([]*domain.CRMMeeting{meeting}, nil)
	mockRepo.EXPECT().ListByCRMMeetingIDs(gomock.Any()).Return(map[string]*domain.MeetingMapping{}, nil)
	mockCRM.EXPECT().MeetingContacts(gomock.Any()).Return(map[string][]*domain.MeetingContact{
		"meet-1": {{ID: "contact-1", Email: stringPtr("lead@example.com")}},
	}, nil)

	near := meetingStart.Add(5 * time.Minute)
	far := meetingStart.Add(3 * time.Hour)
	mockGrain.EXPECT().ListRecordings(gomock.Any(), gomock.Any(), gomock.Any()).Return([]graindomain.Recording{
		recordingWith("rec-far", "lead@example.com", &far),
		recordingWith("rec-near", "lead@example.com", &near),
	}, nil)

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(mapping *domain.MeetingMapping) error {
		assert.Equal(t, "rec-near", mapping.RecordingID)
		return nil
	})

	service := NewService(mockCRM, mockGrain, mockRepo)

	result, err := service.AutoMap(windowFilters())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Mapped)
}

func TestAutoMapTieBreaksOnSmallestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockGrain := grainmocks.NewMockGrainIntegrator(ctrl)
	mockRepo := mocks.NewMockMeetingMappingRepository(ctrl)

	meetingStart := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	meeting := &domain.CRMMeeting{ID: "meet-1", StartTime: &meetingStart}

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return([]*domain.CRMMeeting{meeting}, nil)
	mockRepo.EXPECT().ListByCRMMeetingIDs(gomock.Any()).Return(map[string]*domain.MeetingMapping{}, nil)
	mockCRM.EXPECT().MeetingContacts(gomock.Any()).Return(map[string][]*domain.MeetingContact{
		"meet-1": {{ID: "contact-1", Email: stringPtr("lead@example.com")}},
	}, nil)

	// Mesma distância do início: o menor id em ordem lexicográfica vence
	same := meetingStart.Add(10 * time.Minute)
	mockGrain.EXPECT().ListRecordings(gomock.Any(), gomock.Any(), gomock.Any()).Return([]graindomain.Recording{
		recordingWith("rec-b", "lead@example.com", &same),
		recordingWith("rec-a", "lead@example.com", &same),
	}, nil)

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(mapping *domain.MeetingMapping) error {
		assert.Equal(t, "rec-a", mapping.RecordingID)
		return nil
	})

	service := NewService(mockCRM, mockGrain, mockRepo)

	_, err := service.AutoMap(windowFilters())

	assert.NoError(t, err)
}

func TestAutoMapSkipsAlreadyMappedAndMissingContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotmocks.NewMockHubSpotIntegrator(ctrl)
	mockGrain := grainmocks.NewMockGrainIntegrator(ctrl)
	mockRepo := mocks.NewMockMeetingMappingRepository(ctrl)

	meetingStart := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mapped := &domain.CRMMeeting{ID: "meet-mapped", StartTime: &meetingStart}
	noContact := &domain.CRMMeeting{ID: "meet-no-contact", StartTime: &meetingStart}
	noMatch := &domain.CRMMeeting{ID: "meet-no-match", StartTime: &meetingStart}

	mockCRM.EXPECT().ListMeetings(gomock.Any()).Return([]*domain.CRMMeeting{mapped, noContact, noMatch}, nil)
	mockRepo.EXPECT().ListByCRMMeetingIDs(gomock.Any()).Return(map[string]*domain.MeetingMapping{
		"meet-mapped": {CRMMeetingID: "meet-mapped", RecordingID: "rec-old", Source: domain.MappingSourceManual},
	}, nil)
	mockCRM.EXPECT().MeetingContacts([]string{"meet-no-contact", "meet-no-match"}).Return(map[string][]*domain.MeetingContact{
		"meet-no-contact": {{ID: "contact-1"}}, // contato sem e-mail
		"meet-no-match":   {{ID: "contact-2", Email: stringPtr("other@example.com")}},
	}, nil)
	mockGrain.EXPECT().ListRecordings(gomock.Any(), gomock.Any(), gomock.Any()).Return([]graindomain.Recording{
		recordingWith("rec-1", "someone@else.com", &meetingStart),
	}, nil)

	service := NewService(mockCRM, mockGrain, mockRepo)

	result, err := service.AutoMap(windowFilters())

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 1, result.AlreadyMapped)
	assert.Equal(t, 1, result.MissingContact)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Mapped)
}

func TestParseShareURL(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		expected   string
		expectedOK bool
	}{
		{
			name:       "Link completo",
			url:        "https://grain.com/share/recording/abc123/tok456",
			expected:   "abc123",
			expectedOK: true,
		},
		{
			name:       "Link com query string",
			url:        "https://grain.com/share/recording/abc123/tok456?t=30",
			expected:   "abc123",
			expectedOK: true,
		},
		{
			name:       "Caminho relativo",
			url:        "/share/recording/xyz/token",
			expected:   "xyz",
			expectedOK: true,
		},
		{
			name:       "Formato desconhecido",
			url:        "https://grain.com/recordings/abc123",
			expectedOK: false,
		},
		{
			name:       "Vazio",
			url:        "",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseShareURL(tt.url)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestSaveManualMapping(t *testing.T) {
	t.Run("Com link de compartilhamento extrai o id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGrain := grainmocks.NewMockGrainIntegrator(ctrl)
		mockRepo := mocks.NewMockMeetingMappingRepository(ctrl)

		shareURL := "https://grain.com/share/recording/rec-1/tok"
		mockGrain.EXPECT().GetRecording("rec-1").Return(&graindomain.Recording{
			ID:       "rec-1",
			ShareURL: &shareURL,
		}, nil)
		mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		service := NewService(nil, mockGrain, mockRepo)

		mapping, err := service.SaveManualMapping("meet-1", shareURL)

		assert.NoError(t, err)
		assert.Equal(t, "rec-1", mapping.RecordingID)
		assert.Equal(t, domain.MappingSourceManual, mapping.Source)
		assert.Equal(t, &shareURL, mapping.ShareURL)
	})

	t.Run("Falha ao buscar a gravação não impede o vínculo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGrain := grainmocks.NewMockGrainIntegrator(ctrl)
		mockRepo := mocks.NewMockMeetingMappingRepository(ctrl)

		mockGrain.EXPECT().GetRecording("rec-2").Return(nil, assert.AnError)
		mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		service := NewService(nil, mockGrain, mockRepo)

		mapping, err := service.SaveManualMapping("meet-2", "rec-2")

		assert.NoError(t, err)
		assert.Equal(t, "rec-2", mapping.RecordingID)
		assert.Nil(t, mapping.ShareURL)
	})

	t.Run("Reunião vazia é rejeitada", func(t *testing.T) {
		service := &Service{}

		_, err := service.SaveManualMapping("", "rec-1")

		assert.Error(t, err)
	})
}

func TestListMappings(t *testing.T) {
	t.Run("Sem ids devolve mapa vazio sem consultar o banco", func(t *testing.T) {
		service := &Service{}

		mappings, err := service.ListMappings(nil)

		assert.NoError(t, err)
		assert.Empty(t, mappings)
	})

	t.Run("Com ids delega ao repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockMeetingMappingRepository(ctrl)
		mockRepo.EXPECT().
			ListByCRMMeetingIDs([]string{"meet-1", "meet-2"}).
			Return(map[string]*domain.MeetingMapping{
				"meet-1": {CRMMeetingID: "meet-1", RecordingID: "rec-1"},
			}, nil)

		service := NewService(nil, nil, mockRepo)

		mappings, err := service.ListMappings([]string{"meet-1", "meet-2"})

		assert.NoError(t, err)
		assert.Len(t, mappings, 1)
		assert.Equal(t, "rec-1", mappings["meet-1"].RecordingID)
	})
}
