package hubspotclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
)

// SearchObjects segue os cursores de paginação da API de busca até esgotar os
// resultados ou bater no teto de segurança. Ao bater no teto, loga um aviso e
// devolve o que acumulou até ali.
func (c *HubSpotClient) SearchObjects(
	objectType string,
	request hubspotdomain.SearchRequest,
	maxResults int,
) ([]hubspotdomain.Object, error) {
	if maxResults <= 0 {
		maxResults = MaxSearchResults
	}
	if request.Limit <= 0 {
		request.Limit = SearchPageSize
	}

	results := make([]hubspotdomain.Object, 0)
	after := ""

	for {
		request.After = after

		body, err := c.doRequest(http.MethodPost, fmt.Sprintf("/crm/v3/objects/%s/search", objectType), request)
		if err != nil {
			return nil, err
		}

		var response hubspotdomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON da busca")
			return nil, err
		}

		results = append(results, response.Results...)

		if len(results) >= maxResults {
			logrus.WithFields(logrus.Fields{
				"object_type": objectType,
				"accumulated": len(results),
				"max_results": maxResults,
			}).Warn("busca: teto de paginação atingido, mantendo o que foi acumulado")
			return results, nil
		}

		if response.Paging == nil || response.Paging.Next == nil || response.Paging.Next.After == "" {
			return results, nil
		}

		after = response.Paging.Next.After
	}
}

// ListObjects percorre a listagem simples (sem filtros) de um tipo de objeto.
// Usada como último recurso quando a busca filtrada não devolve nada.
func (c *HubSpotClient) ListObjects(
	objectType string,
	properties []string,
	maxResults int,
) ([]hubspotdomain.Object, error) {
	if maxResults <= 0 {
		maxResults = MaxSearchResults
	}

	results := make([]hubspotdomain.Object, 0)
	after := ""

	for {
		params := url.Values{}
		params.Set("limit", fmt.Sprintf("%d", SearchPageSize))
		for _, p := range properties {
			params.Add("properties", p)
		}
		if after != "" {
			params.Set("after", after)
		}

		body, err := c.doRequest(http.MethodGet, fmt.Sprintf("/crm/v3/objects/%s?%s", objectType, params.Encode()), nil)
		if err != nil {
			return nil, err
		}

		var response hubspotdomain.ListResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON da listagem")
			return nil, err
		}

		results = append(results, response.Results...)

		if len(results) >= maxResults {
			logrus.WithFields(logrus.Fields{
				"object_type": objectType,
				"accumulated": len(results),
				"max_results": maxResults,
			}).Warn("listagem: teto de paginação atingido, mantendo o que foi acumulado")
			return results, nil
		}

		if response.Paging == nil || response.Paging.Next == nil || response.Paging.Next.After == "" {
			return results, nil
		}

		after = response.Paging.Next.After
	}
}
