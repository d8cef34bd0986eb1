package hubspotclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
)

// BatchAssociations resolve associações em lote (v4) e devolve um mapa de
// id de origem para os ids associados.
func (c *HubSpotClient) BatchAssociations(fromType, toType string, ids []string) (map[string][]string, error) {
	if len(ids) == 0 {
		return map[string][]string{}, nil
	}

	inputs := make([]hubspotdomain.BatchInput, 0, len(ids))
	for _, id := range ids {
		inputs = append(inputs, hubspotdomain.BatchInput{ID: id})
	}

	payload := map[string]any{
		"inputs": inputs,
	}

	body, err := c.doRequest(
		http.MethodPost,
		fmt.Sprintf("/crm/v4/associations/%s/%s/batch/read", fromType, toType),
		payload,
	)
	if err != nil {
		return nil, err
	}

	var response hubspotdomain.AssociationBatchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do batch de associações")
		return nil, err
	}

	associations := make(map[string][]string, len(response.Results))
	for _, result := range response.Results {
		targets := make([]string, 0, len(result.To))
		for _, to := range result.To {
			switch {
			case to.ID != "":
				targets = append(targets, to.ID)
			case to.ToObjectID != 0:
				targets = append(targets, strconv.FormatInt(to.ToObjectID, 10))
			}
		}
		associations[result.From.ID] = targets
	}

	return associations, nil
}

// LegacyMeetingEngagements é o fallback por id quando o batch v4 omite uma
// reunião: consulta o endpoint legado de engagements associados.
func (c *HubSpotClient) LegacyMeetingEngagements(meetingID string) ([]string, error) {
	body, err := c.doRequest(
		http.MethodGet,
		fmt.Sprintf("/engagements/v1/engagements/associated/meeting/%s/paged", meetingID),
		nil,
	)
	if err != nil {
		return nil, err
	}

	var response hubspotdomain.LegacyEngagementAssociations
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do endpoint legado de engagements")
		return nil, err
	}

	ids := make([]string, 0, len(response.Results))
	for _, id := range response.Results {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	return ids, nil
}

// GetEngagement busca um engagement no endpoint legado v1, onde ficam os
// metadados de resultado da reunião.
func (c *HubSpotClient) GetEngagement(engagementID string) (*hubspotdomain.Engagement, error) {
	body, err := c.doRequest(http.MethodGet, fmt.Sprintf("/engagements/v1/engagements/%s", engagementID), nil)
	if err != nil {
		return nil, err
	}

	var engagement hubspotdomain.Engagement
	if err := json.Unmarshal(body, &engagement); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do engagement")
		return nil, err
	}

	return &engagement, nil
}
