package hubspot

import (
	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

var callProperties = []string{"hs_call_status", "hs_timestamp", "hubspot_owner_id"}

var emailProperties = []string{"hs_email_status", "hs_timestamp", "hs_createdate", "hubspot_owner_id"}

func (s *HubSpotService) ListCalls(filters *domain.MetricsFilters) ([]*domain.Call, error) {
	searchFilters := buildFilters("hubspot_owner_id", "hs_timestamp", filters)

	results, err := s.Client.SearchObjects(
		hubspotdomain.ObjectTypeCall,
		searchRequest(searchFilters, callProperties),
		hubspotclient.MaxEngagementResults,
	)
	if err != nil {
		logrus.WithError(err).Error("ligações: falha ao buscar ligações no CRM")
		return nil, err
	}

	calls := make([]*domain.Call, 0, len(results))
	for _, object := range results {
		calls = append(calls, &domain.Call{
			ID:        object.ID,
			Status:    object.Property("hs_call_status"),
			Timestamp: parseTimestamp(object.Property("hs_timestamp")),
			OwnerID:   optionalString(object.Property("hubspot_owner_id")),
		})
	}

	return calls, nil
}

// ListEmails tenta três estratégias em ordem, porque o CRM popula o timestamp
// primário de e-mails de forma inconsistente:
//  1. busca filtrada por hs_timestamp;
//  2. busca filtrada por hs_createdate (só quando há filtros reais);
//  3. listagem sem filtro com corte de data/owner no cliente.
func (s *HubSpotService) ListEmails(filters *domain.MetricsFilters) ([]*domain.Email, error) {
	searchFilters := buildFilters("hubspot_owner_id", "hs_timestamp", filters)

	results, err := s.Client.SearchObjects(
		hubspotdomain.ObjectTypeEmail,
		searchRequest(searchFilters, emailProperties),
		hubspotclient.MaxEngagementResults,
	)
	if err != nil {
		logrus.WithError(err).Error("e-mails: falha ao buscar e-mails no CRM")
		return nil, err
	}

	if len(results) == 0 && len(searchFilters) > 0 {
		logrus.Debug("e-mails: busca por hs_timestamp vazia, tentando hs_createdate")

		createdFilters := buildFilters("hubspot_owner_id", "hs_createdate", filters)
		results, err = s.Client.SearchObjects(
			hubspotdomain.ObjectTypeEmail,
			searchRequest(createdFilters, emailProperties),
			hubspotclient.MaxEngagementResults,
		)
		if err != nil {
			logrus.WithError(err).Error("e-mails: falha na busca por hs_createdate")
			return nil, err
		}
	}

	if len(results) == 0 {
		logrus.Debug("e-mails: buscas filtradas vazias, caindo para listagem sem filtro")

		listed, err := s.Client.ListObjects(
			hubspotdomain.ObjectTypeEmail,
			emailProperties,
			hubspotclient.MaxEngagementResults,
		)
		if err != nil {
			logrus.WithError(err).Error("e-mails: falha na listagem sem filtro")
			return nil, err
		}

		results = filterEmailsClientSide(listed, filters)
	}

	emails := make([]*domain.Email, 0, len(results))
	for _, object := range results {
		timestamp := parseTimestamp(object.Property("hs_timestamp"))
		if timestamp == nil {
			timestamp = parseTimestamp(object.Property("hs_createdate"))
		}

		emails = append(emails, &domain.Email{
			ID:        object.ID,
			Status:    object.Property("hs_email_status"),
			Timestamp: timestamp,
			OwnerID:   optionalString(object.Property("hubspot_owner_id")),
		})
	}

	return emails, nil
}

func filterEmailsClientSide(objects []hubspotdomain.Object, filters *domain.MetricsFilters) []hubspotdomain.Object {
	if filters == nil {
		return objects
	}

	owners := make(map[string]struct{}, len(filters.OwnerIDs))
	for _, id := range filters.OwnerIDs {
		owners[id] = struct{}{}
	}

	filtered := make([]hubspotdomain.Object, 0, len(objects))
	for _, object := range objects {
		timestamp := parseTimestamp(object.Property("hs_timestamp"))
		if timestamp == nil {
			timestamp = parseTimestamp(object.Property("hs_createdate"))
		}

		if filters.StartDate != nil && (timestamp == nil || timestamp.Before(*filters.StartDate)) {
			continue
		}
		if filters.EndDate != nil && (timestamp == nil || timestamp.After(*filters.EndDate)) {
			continue
		}
		if len(owners) > 0 {
			if _, ok := owners[object.Property("hubspot_owner_id")]; !ok {
				continue
			}
		}

		filtered = append(filtered, object)
	}

	return filtered
}
