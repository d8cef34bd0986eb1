package hubspot

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-pulse-api/internal/config"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

// Atraso entre buscas sequenciais por owner, para não estourar o rate limit
const perOwnerFetchDelay = 200 * time.Millisecond

type HubSpotIntegrator interface {
	ListMeetings(filters *domain.MetricsFilters) ([]*domain.CRMMeeting, error)
	ListDeals(filters *domain.MetricsFilters) ([]*domain.Deal, error)
	GetDealsByIDs(dealIDs []string) ([]*domain.Deal, error)
	ListCalls(filters *domain.MetricsFilters) ([]*domain.Call, error)
	ListEmails(filters *domain.MetricsFilters) ([]*domain.Email, error)
	ListOwners() ([]*domain.Owner, error)
	ListPipelines() ([]*domain.Pipeline, error)
	ListSequences() ([]*domain.Sequence, error)
	MeetingContacts(meetingIDs []string) (map[string][]*domain.MeetingContact, error)
	MeetingDeals(meetingIDs []string) (map[string][]string, error)
	MeetingEngagements(meetingIDs []string) (map[string][]string, error)
	GetMeetingByID(meetingID string) (*domain.CRMMeeting, error)
	GetEngagementOutcome(engagementID string) (*string, error)
	UpdateDeal(dealID string, properties map[string]*string) error
	UpdateMeeting(meetingID string, properties map[string]*string) error
}

type HubSpotService struct {
	cfg    *config.Config
	Client hubspotclient.Client
}

func New(cfg *config.Config, client hubspotclient.Client) HubSpotIntegrator {
	return &HubSpotService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *HubSpotService) ListOwners() ([]*domain.Owner, error) {
	raw, err := s.Client.ListOwners()
	if err != nil {
		logrus.WithError(err).Error("owners: falha ao buscar owners no CRM")
		return nil, err
	}

	owners := make([]*domain.Owner, 0, len(raw))
	for _, o := range raw {
		if o.Archived {
			continue
		}

		owners = append(owners, &domain.Owner{
			ID:        o.ID,
			Email:     o.Email,
			FirstName: o.FirstName,
			LastName:  o.LastName,
			UserID:    o.UserID,
		})
	}

	return owners, nil
}

// ListPipelines devolve os pipelines de negócios com os estágios já marcados
// como ganho/perdido a partir dos ids e labels.
func (s *HubSpotService) ListPipelines() ([]*domain.Pipeline, error) {
	raw, err := s.Client.ListPipelines(hubspotdomain.ObjectTypeDeal)
	if err != nil {
		logrus.WithError(err).Error("pipelines: falha ao buscar pipelines no CRM")
		return nil, err
	}

	pipelines := make([]*domain.Pipeline, 0, len(raw))
	for _, p := range raw {
		stages := make([]domain.PipelineStage, 0, len(p.Stages))
		for _, st := range p.Stages {
			stages = append(stages, domain.PipelineStage{
				ID:    st.ID,
				Label: st.Label,
				Won:   stageIsWon(st),
				Lost:  stageIsLost(st),
			})
		}

		pipelines = append(pipelines, &domain.Pipeline{
			ID:     p.ID,
			Label:  p.Label,
			Stages: stages,
		})
	}

	return pipelines, nil
}

// ListSequences consulta as sequências pelo userId legado do primeiro owner
// que possui um; a API de automação não aceita o id de owner comum.
func (s *HubSpotService) ListSequences() ([]*domain.Sequence, error) {
	owners, err := s.ListOwners()
	if err != nil {
		return nil, err
	}

	var userID *int64
	for _, o := range owners {
		if o.UserID != nil {
			userID = o.UserID
			break
		}
	}

	if userID == nil {
		logrus.Warn("sequências: nenhum owner com userId legado, pulando consulta")
		return nil, nil
	}

	raw, err := s.Client.ListSequences(strconv.FormatInt(*userID, 10))
	if err != nil {
		logrus.WithError(err).Error("sequências: falha ao buscar sequências no CRM")
		return nil, err
	}

	sequences := make([]*domain.Sequence, 0, len(raw))
	for _, seq := range raw {
		sequences = append(sequences, &domain.Sequence{
			ID:   seq.ID,
			Name: seq.Name,
		})
	}

	return sequences, nil
}

// UpdateDeal atualiza propriedades mutáveis de um negócio. Valor nil limpa a
// propriedade (a API exige string vazia explícita).
func (s *HubSpotService) UpdateDeal(dealID string, properties map[string]*string) error {
	return s.Client.UpdateObject(hubspotdomain.ObjectTypeDeal, dealID, flattenProperties(properties))
}

func (s *HubSpotService) UpdateMeeting(meetingID string, properties map[string]*string) error {
	return s.Client.UpdateObject(hubspotdomain.ObjectTypeMeeting, meetingID, flattenProperties(properties))
}

func flattenProperties(properties map[string]*string) map[string]string {
	flat := make(map[string]string, len(properties))
	for name, value := range properties {
		if value == nil {
			flat[name] = ""
			continue
		}
		flat[name] = *value
	}

	return flat
}

func stageIsWon(stage hubspotdomain.PipelineStage) bool {
	return domain.MatchesWonStage(stage.ID) || domain.MatchesWonStage(stage.Label)
}

func stageIsLost(stage hubspotdomain.PipelineStage) bool {
	return domain.MatchesLostStage(stage.ID) || domain.MatchesLostStage(stage.Label)
}

// buildFilters monta o grupo de filtros da busca: owners por IN/EQ conforme a
// cardinalidade e intervalo de datas por GTE/LTE em milissegundos.
func buildFilters(ownerProperty string, tsProperty string, filters *domain.MetricsFilters) []hubspotdomain.Filter {
	built := make([]hubspotdomain.Filter, 0, 3)

	if filters == nil {
		return built
	}

	switch {
	case len(filters.OwnerIDs) > 1:
		built = append(built, hubspotdomain.Filter{
			PropertyName: ownerProperty,
			Operator:     hubspotdomain.OperatorIN,
			Value:        strings.Join(filters.OwnerIDs, ";"),
			Values:       filters.OwnerIDs,
		})
	case len(filters.OwnerIDs) == 1:
		built = append(built, hubspotdomain.Filter{
			PropertyName: ownerProperty,
			Operator:     hubspotdomain.OperatorEQ,
			Value:        filters.OwnerIDs[0],
		})
	}

	if filters.StartDate != nil {
		built = append(built, hubspotdomain.Filter{
			PropertyName: tsProperty,
			Operator:     hubspotdomain.OperatorGTE,
			Value:        strconv.FormatInt(filters.StartDate.UnixMilli(), 10),
		})
	}

	if filters.EndDate != nil {
		built = append(built, hubspotdomain.Filter{
			PropertyName: tsProperty,
			Operator:     hubspotdomain.OperatorLTE,
			Value:        strconv.FormatInt(filters.EndDate.UnixMilli(), 10),
		})
	}

	return built
}

func searchRequest(filters []hubspotdomain.Filter, properties []string) hubspotdomain.SearchRequest {
	request := hubspotdomain.SearchRequest{
		Properties: properties,
		Limit:      hubspotclient.SearchPageSize,
	}

	if len(filters) > 0 {
		request.FilterGroups = []hubspotdomain.FilterGroup{{Filters: filters}}
	}

	return request
}

// parseTimestamp aceita epoch em milissegundos ou RFC3339; devolve nil quando
// o valor não é interpretável.
func parseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t := time.UnixMilli(ms)
		return &t
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}

	return nil
}

func optionalString(raw string) *string {
	if raw == "" {
		return nil
	}

	return &raw
}
