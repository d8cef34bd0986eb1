package hubspot

import (
	"time"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

var dealProperties = []string{
	"dealname",
	"amount",
	"dealstage",
	"pipeline",
	"closedate",
	"createdate",
	"hubspot_owner_id",
	"lead_source",
	"hs_lastmodifieddate",
}

// ListDeals busca os negócios do período. Com mais de um owner a busca é
// feita owner a owner, com um pequeno atraso entre elas e deduplicação por
// id, por limitação do formato de consulta do CRM.
func (s *HubSpotService) ListDeals(filters *domain.MetricsFilters) ([]*domain.Deal, error) {
	stages, err := s.dealStages()
	if err != nil {
		return nil, err
	}

	if filters == nil || len(filters.OwnerIDs) <= 1 {
		results, err := s.searchDeals(filters, hubspotclient.MaxSearchResults)
		if err != nil {
			return nil, err
		}

		return factoryDeals(results, stages), nil
	}

	seen := make(map[string]struct{})
	all := make([]hubspotdomain.Object, 0)

	for i, ownerID := range filters.OwnerIDs {
		if i > 0 {
			time.Sleep(perOwnerFetchDelay)
		}

		ownerFilters := &domain.MetricsFilters{
			StartDate: filters.StartDate,
			EndDate:   filters.EndDate,
			OwnerIDs:  []string{ownerID},
		}

		results, err := s.searchDeals(ownerFilters, hubspotclient.MaxDealsPerOwner)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("negócios: falha ao buscar negócios do owner")
			return nil, err
		}

		for _, object := range results {
			if _, ok := seen[object.ID]; ok {
				continue
			}
			seen[object.ID] = struct{}{}
			all = append(all, object)
		}
	}

	return factoryDeals(all, stages), nil
}

func (s *HubSpotService) searchDeals(filters *domain.MetricsFilters, maxResults int) ([]hubspotdomain.Object, error) {
	// A janela de datas recai sobre closedate; deals criados no período mas
	// fechados fora dele ficam de fora do resultado.
	searchFilters := buildFilters("hubspot_owner_id", "closedate", filters)

	return s.Client.SearchObjects(
		hubspotdomain.ObjectTypeDeal,
		searchRequest(searchFilters, dealProperties),
		maxResults,
	)
}

type stageIndex struct {
	labels map[string]string
	won    map[string]struct{}
	lost   map[string]struct{}
}

// dealStages indexa os estágios de todos os pipelines para classificar
// ganho/perdido por id de estágio.
func (s *HubSpotService) dealStages() (*stageIndex, error) {
	pipelines, err := s.ListPipelines()
	if err != nil {
		return nil, err
	}

	index := &stageIndex{
		labels: make(map[string]string),
		won:    make(map[string]struct{}),
		lost:   make(map[string]struct{}),
	}

	for _, pipeline := range pipelines {
		for _, stage := range pipeline.Stages {
			index.labels[stage.ID] = stage.Label
			if stage.Won {
				index.won[stage.ID] = struct{}{}
			}
			if stage.Lost {
				index.lost[stage.ID] = struct{}{}
			}
		}
	}

	return index, nil
}

// GetDealsByIDs lê negócios em lote, com o mínimo de propriedades que o
// enriquecimento de reuniões precisa (origem do lead e recência).
func (s *HubSpotService) GetDealsByIDs(dealIDs []string) ([]*domain.Deal, error) {
	objects, err := s.Client.BatchReadObjects(
		hubspotdomain.ObjectTypeDeal,
		dealIDs,
		[]string{"dealname", "lead_source", "hs_lastmodifieddate", "createdate"},
	)
	if err != nil {
		logrus.WithError(err).Error("negócios: falha ao buscar negócios em lote")
		return nil, err
	}

	deals := make([]*domain.Deal, 0, len(objects))
	for _, object := range objects {
		deals = append(deals, &domain.Deal{
			ID:         object.ID,
			Name:       object.Property("dealname"),
			LeadSource: optionalString(object.Property("lead_source")),
			UpdatedAt:  parseTimestamp(object.Property("hs_lastmodifieddate")),
			CreateDate: parseTimestamp(object.Property("createdate")),
		})
	}

	return deals, nil
}

func factoryDeals(objects []hubspotdomain.Object, stages *stageIndex) []*domain.Deal {
	deals := make([]*domain.Deal, 0, len(objects))

	for _, object := range objects {
		stageID := object.Property("dealstage")
		_, won := stages.won[stageID]
		_, lost := stages.lost[stageID]

		deals = append(deals, &domain.Deal{
			ID:         object.ID,
			Name:       object.Property("dealname"),
			Amount:     utils.ParseAmount(object.Property("amount")),
			StageID:    stageID,
			StageLabel: stages.labels[stageID],
			PipelineID: object.Property("pipeline"),
			CloseDate:  parseTimestamp(object.Property("closedate")),
			CreateDate: parseTimestamp(object.Property("createdate")),
			UpdatedAt:  parseTimestamp(object.Property("hs_lastmodifieddate")),
			OwnerID:    optionalString(object.Property("hubspot_owner_id")),
			LeadSource: optionalString(object.Property("lead_source")),
			Won:        won,
			Lost:       lost,
		})
	}

	return deals
}
