package meetings

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

type Lister interface {
	ListMeetings(filters *domain.MetricsFilters) ([]*domain.EnrichedMeeting, error)
	UpdateOutcome(meetingID string, outcome *string) error
}

type Service struct {
	crm               CRMSource
	recordings        RecordingSource
	mappingRepository repository.MeetingMappingRepository
}

func NewService(
	crm CRMSource,
	recordings RecordingSource,
	mappingRepo repository.MeetingMappingRepository,
) Lister {
	return &Service{
		crm:               crm,
		recordings:        recordings,
		mappingRepository: mappingRepo,
	}
}

// ListMeetings devolve as reuniões do período enriquecidas com origem do
// lead, negócio associado, contato primário, gravação e resultado resolvido.
// Cada enriquecimento degrada individualmente: só a busca das reuniões em si
// aborta a listagem.
func (s *Service) ListMeetings(filters *domain.MetricsFilters) ([]*domain.EnrichedMeeting, error) {
	meetings, err := s.crm.ListMeetings(filters)
	if err != nil {
		logrus.WithError(err).Error("reuniões: falha ao buscar reuniões do período")
		return nil, err
	}

	if len(meetings) == 0 {
		return []*domain.EnrichedMeeting{}, nil
	}

	meetingIDs := make([]string, 0, len(meetings))
	for _, meeting := range meetings {
		meetingIDs = append(meetingIDs, meeting.ID)
	}

	ownerNames := s.ownerNames()
	leadSources, dealIDs := s.resolveDeals(meetingIDs)
	contacts := s.resolveContacts(meetingIDs)
	mappings := s.resolveMappings(meetingIDs)
	engagements := s.resolveEngagements(meetingIDs)

	enriched := make([]*domain.EnrichedMeeting, 0, len(meetings))
	for _, meeting := range meetings {
		item := &domain.EnrichedMeeting{
			ID:        meeting.ID,
			Title:     meeting.Title,
			StartTime: meeting.EffectiveStart(),
			EndTime:   meeting.EndTime,
			Outcome:   meeting.Outcome,
			OwnerID:   meeting.OwnerID,
		}

		if meeting.OwnerID != nil {
			if name, ok := ownerNames[*meeting.OwnerID]; ok {
				item.OwnerName = &name
			}
		}

		item.LeadSource = leadSources[meeting.ID]
		if dealID, ok := dealIDs[meeting.ID]; ok {
			item.DealID = &dealID
		}

		if meetingContacts := contacts[meeting.ID]; len(meetingContacts) > 0 {
			item.PrimaryContact = meetingContacts[0]
		}

		if mapping, ok := mappings[meeting.ID]; ok {
			item.RecordingURL = mapping.ShareURL
			item.CoachingScore = s.coachingScore(mapping.RecordingID)
		}

		if item.Outcome == nil || *item.Outcome == "" {
			item.Outcome = s.resolveOutcome(meeting, engagements[meeting.ID])
		}

		item.OutcomeTag = domain.ClassifyOutcome(stringValue(item.Outcome))

		enriched = append(enriched, item)
	}

	return enriched, nil
}

// UpdateOutcome grava o resultado da reunião no CRM; nil limpa o campo
func (s *Service) UpdateOutcome(meetingID string, outcome *string) error {
	return s.crm.UpdateMeeting(meetingID, map[string]*string{
		"hs_meeting_outcome": outcome,
	})
}

func (s *Service) ownerNames() map[string]string {
	owners, err := s.crm.ListOwners()
	if err != nil {
		logrus.WithError(err).Warn("reuniões: falha ao buscar owners, seguindo sem nomes")
		return map[string]string{}
	}

	names := make(map[string]string, len(owners))
	for _, owner := range owners {
		names[owner.ID] = owner.FullName()
	}

	return names
}

// resolveDeals escolhe, por reunião, o negócio associado mais recente
// (pela última modificação) e extrai a origem do lead dele.
func (s *Service) resolveDeals(meetingIDs []string) (map[string]*string, map[string]string) {
	leadSources := make(map[string]*string)
	chosen := make(map[string]string)

	associations, err := s.crm.MeetingDeals(meetingIDs)
	if err != nil {
		logrus.WithError(err).Warn("reuniões: falha ao buscar negócios associados, seguindo sem")
		return leadSources, chosen
	}

	idSet := make(map[string]struct{})
	allDealIDs := make([]string, 0)
	for _, ids := range associations {
		for _, id := range ids {
			if _, ok := idSet[id]; ok {
				continue
			}
			idSet[id] = struct{}{}
			allDealIDs = append(allDealIDs, id)
		}
	}

	if len(allDealIDs) == 0 {
		return leadSources, chosen
	}

	deals, err := s.crm.GetDealsByIDs(allDealIDs)
	if err != nil {
		logrus.WithError(err).Warn("reuniões: falha ao ler negócios em lote, seguindo sem")
		return leadSources, chosen
	}

	dealsByID := make(map[string]*domain.Deal, len(deals))
	for _, deal := range deals {
		dealsByID[deal.ID] = deal
	}

	for meetingID, ids := range associations {
		var best *domain.Deal
		for _, id := range ids {
			deal, ok := dealsByID[id]
			if !ok {
				continue
			}
			if best == nil || laterThan(deal.UpdatedAt, best.UpdatedAt) {
				best = deal
			}
		}

		if best != nil {
			chosen[meetingID] = best.ID
			leadSources[meetingID] = best.LeadSource
		}
	}

	return leadSources, chosen
}

func (s *Service) resolveContacts(meetingIDs []string) map[string][]*domain.MeetingContact {
	contacts, err := s.crm.MeetingContacts(meetingIDs)
	if err != nil {
		logrus.WithError(err).Warn("reuniões: falha ao buscar contatos, seguindo sem")
		return map[string][]*domain.MeetingContact{}
	}

	return contacts
}

func (s *Service) resolveMappings(meetingIDs []string) map[string]*domain.MeetingMapping {
	mappings, err := s.mappingRepository.ListByCRMMeetingIDs(meetingIDs)
	if err != nil {
		logrus.WithError(err).Warn("reuniões: falha ao buscar mapeamentos de gravação, seguindo sem")
		return map[string]*domain.MeetingMapping{}
	}

	return mappings
}

func (s *Service) resolveEngagements(meetingIDs []string) map[string][]string {
	engagements, err := s.crm.MeetingEngagements(meetingIDs)
	if err != nil {
		logrus.WithError(err).Warn("reuniões: falha ao buscar engagements, seguindo sem")
		return map[string][]string{}
	}

	return engagements
}

func (s *Service) coachingScore(recordingID string) *float64 {
	feedback, err := s.recordings.GetCoachingFeedback(recordingID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"recording_id": recordingID,
			"error":        err.Error(),
		}).Warn("reuniões: falha ao buscar coaching, seguindo sem nota")
		return nil
	}

	if feedback == nil {
		return nil
	}

	return feedback.Score
}

func laterThan(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}

	return a.After(*b)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
