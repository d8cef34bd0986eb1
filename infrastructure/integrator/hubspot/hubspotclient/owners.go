package hubspotclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
)

func (c *HubSpotClient) ListOwners() ([]hubspotdomain.Owner, error) {
	owners := make([]hubspotdomain.Owner, 0)
	after := ""

	for {
		params := url.Values{}
		params.Set("limit", "100")
		if after != "" {
			params.Set("after", after)
		}

		body, err := c.doRequest(http.MethodGet, "/crm/v3/owners?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}

		var response hubspotdomain.OwnersResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON dos owners")
			return nil, err
		}

		owners = append(owners, response.Results...)

		if len(owners) >= MaxOwners {
			logrus.WithField("accumulated", len(owners)).
				Warn("owners: teto de paginação atingido, mantendo o que foi acumulado")
			return owners, nil
		}

		if response.Paging == nil || response.Paging.Next == nil || response.Paging.Next.After == "" {
			return owners, nil
		}

		after = response.Paging.Next.After
	}
}

func (c *HubSpotClient) ListPipelines(objectType string) ([]hubspotdomain.Pipeline, error) {
	body, err := c.doRequest(http.MethodGet, fmt.Sprintf("/crm/v3/pipelines/%s", objectType), nil)
	if err != nil {
		return nil, err
	}

	var response hubspotdomain.PipelinesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON dos pipelines")
		return nil, err
	}

	return response.Results, nil
}

// ListSequences usa o id de usuário legado (numérico), não o id de owner
func (c *HubSpotClient) ListSequences(userID string) ([]hubspotdomain.Sequence, error) {
	params := url.Values{}
	params.Set("userId", userID)

	body, err := c.doRequest(http.MethodGet, "/automation/v4/sequences?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var response hubspotdomain.SequencesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON das sequências")
		return nil, err
	}

	return response.Results, nil
}
