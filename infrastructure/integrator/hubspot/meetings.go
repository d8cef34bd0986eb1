package hubspot

import (
	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

var meetingProperties = []string{
	"hs_meeting_title",
	"hs_meeting_start_time",
	"hs_meeting_end_time",
	"hs_timestamp",
	"hs_meeting_outcome",
	"hubspot_owner_id",
	"hs_activity_type",
	"hs_engagement_source",
	"hs_engagement_id",
}

var contactProperties = []string{"email", "firstname", "lastname"}

func (s *HubSpotService) ListMeetings(filters *domain.MetricsFilters) ([]*domain.CRMMeeting, error) {
	searchFilters := buildFilters("hubspot_owner_id", "hs_timestamp", filters)

	results, err := s.Client.SearchObjects(
		hubspotdomain.ObjectTypeMeeting,
		searchRequest(searchFilters, meetingProperties),
		hubspotclient.MaxEngagementResults,
	)
	if err != nil {
		logrus.WithError(err).Error("reuniões: falha ao buscar reuniões no CRM")
		return nil, err
	}

	meetings := make([]*domain.CRMMeeting, 0, len(results))
	for _, object := range results {
		meetings = append(meetings, factoryMeeting(object))
	}

	return meetings, nil
}

func (s *HubSpotService) GetMeetingByID(meetingID string) (*domain.CRMMeeting, error) {
	object, err := s.Client.GetObject(hubspotdomain.ObjectTypeMeeting, meetingID, meetingProperties)
	if err != nil {
		return nil, err
	}

	return factoryMeeting(*object), nil
}

func factoryMeeting(object hubspotdomain.Object) *domain.CRMMeeting {
	return &domain.CRMMeeting{
		ID:           object.ID,
		Title:        object.Property("hs_meeting_title"),
		StartTime:    parseTimestamp(object.Property("hs_meeting_start_time")),
		EndTime:      parseTimestamp(object.Property("hs_meeting_end_time")),
		Timestamp:    parseTimestamp(object.Property("hs_timestamp")),
		Outcome:      optionalString(object.Property("hs_meeting_outcome")),
		OwnerID:      optionalString(object.Property("hubspot_owner_id")),
		ActivityType: optionalString(object.Property("hs_activity_type")),
		Source:       optionalString(object.Property("hs_engagement_source")),
		EngagementID: optionalString(object.Property("hs_engagement_id")),
	}
}

// MeetingContacts resolve os contatos de cada reunião: associações em lote
// seguidas de uma leitura em lote dos contatos.
func (s *HubSpotService) MeetingContacts(meetingIDs []string) (map[string][]*domain.MeetingContact, error) {
	associations, err := s.Client.BatchAssociations(
		hubspotdomain.ObjectTypeMeeting,
		hubspotdomain.ObjectTypeContact,
		meetingIDs,
	)
	if err != nil {
		logrus.WithError(err).Error("reuniões: falha ao buscar associações de contatos")
		return nil, err
	}

	contactIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, ids := range associations {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			contactIDs = append(contactIDs, id)
		}
	}

	objects, err := s.Client.BatchReadObjects(hubspotdomain.ObjectTypeContact, contactIDs, contactProperties)
	if err != nil {
		logrus.WithError(err).Error("reuniões: falha ao buscar contatos em lote")
		return nil, err
	}

	contactsByID := make(map[string]*domain.MeetingContact, len(objects))
	for _, object := range objects {
		contactsByID[object.ID] = &domain.MeetingContact{
			ID:        object.ID,
			Email:     optionalString(object.Property("email")),
			FirstName: optionalString(object.Property("firstname")),
			LastName:  optionalString(object.Property("lastname")),
		}
	}

	contacts := make(map[string][]*domain.MeetingContact, len(associations))
	for meetingID, ids := range associations {
		resolved := make([]*domain.MeetingContact, 0, len(ids))
		for _, id := range ids {
			if contact, ok := contactsByID[id]; ok {
				resolved = append(resolved, contact)
				continue
			}
			// Contato associado mas não devolvido pelo batch: mantém só o id
			resolved = append(resolved, &domain.MeetingContact{ID: id})
		}
		contacts[meetingID] = resolved
	}

	return contacts, nil
}

func (s *HubSpotService) MeetingDeals(meetingIDs []string) (map[string][]string, error) {
	associations, err := s.Client.BatchAssociations(
		hubspotdomain.ObjectTypeMeeting,
		hubspotdomain.ObjectTypeDeal,
		meetingIDs,
	)
	if err != nil {
		logrus.WithError(err).Error("reuniões: falha ao buscar associações de negócios")
		return nil, err
	}

	return associations, nil
}

// MeetingEngagements resolve engagements por reunião via batch v4, caindo para
// o endpoint legado por id quando o batch omite uma reunião. Falha individual
// no fallback não aborta o lote.
func (s *HubSpotService) MeetingEngagements(meetingIDs []string) (map[string][]string, error) {
	associations, err := s.Client.BatchAssociations(
		hubspotdomain.ObjectTypeMeeting,
		"engagements",
		meetingIDs,
	)
	if err != nil {
		logrus.WithError(err).Error("reuniões: falha ao buscar associações de engagements")
		return nil, err
	}

	for _, meetingID := range meetingIDs {
		if ids, ok := associations[meetingID]; ok && len(ids) > 0 {
			continue
		}

		legacy, err := s.Client.LegacyMeetingEngagements(meetingID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"meeting_id": meetingID,
				"error":      err.Error(),
			}).Warn("reuniões: fallback legado de engagements falhou, seguindo sem")
			continue
		}

		associations[meetingID] = legacy
	}

	return associations, nil
}

// Chaves conhecidas do resultado da reunião nos metadados do engagement
var engagementOutcomeKeys = []string{"meetingOutcome", "meeting_result", "outcome"}

func (s *HubSpotService) GetEngagementOutcome(engagementID string) (*string, error) {
	engagement, err := s.Client.GetEngagement(engagementID)
	if err != nil {
		return nil, err
	}

	if engagement == nil || engagement.Metadata == nil {
		return nil, nil
	}

	for _, key := range engagementOutcomeKeys {
		if value, ok := engagement.Metadata[key].(string); ok && value != "" {
			return &value, nil
		}
	}

	return nil, nil
}
