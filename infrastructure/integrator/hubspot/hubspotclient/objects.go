package hubspotclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
)

func (c *HubSpotClient) GetObject(objectType, objectID string, properties []string) (*hubspotdomain.Object, error) {
	params := url.Values{}
	for _, p := range properties {
		params.Add("properties", p)
	}

	path := fmt.Sprintf("/crm/v3/objects/%s/%s", objectType, objectID)
	if len(properties) > 0 {
		path += "?" + params.Encode()
	}

	body, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var object hubspotdomain.Object
	if err := json.Unmarshal(body, &object); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do objeto")
		return nil, err
	}

	return &object, nil
}

// UpdateObject aplica uma atualização parcial de propriedades. Para limpar
// uma propriedade a API exige string vazia explícita, nunca null.
func (c *HubSpotClient) UpdateObject(objectType, objectID string, properties map[string]string) error {
	payload := map[string]any{
		"properties": properties,
	}

	_, err := c.doRequest(http.MethodPatch, fmt.Sprintf("/crm/v3/objects/%s/%s", objectType, objectID), payload)

	return err
}

// BatchReadObjects busca vários objetos por id em uma única requisição
func (c *HubSpotClient) BatchReadObjects(
	objectType string,
	ids []string,
	properties []string,
) ([]hubspotdomain.Object, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	inputs := make([]hubspotdomain.BatchInput, 0, len(ids))
	for _, id := range ids {
		inputs = append(inputs, hubspotdomain.BatchInput{ID: id})
	}

	request := hubspotdomain.BatchReadRequest{
		Inputs:     inputs,
		Properties: properties,
	}

	body, err := c.doRequest(http.MethodPost, fmt.Sprintf("/crm/v3/objects/%s/batch/read", objectType), request)
	if err != nil {
		return nil, err
	}

	var response hubspotdomain.BatchObjectResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do batch de objetos")
		return nil, err
	}

	return response.Results, nil
}
