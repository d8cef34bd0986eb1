package hubspotclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-pulse-api/internal/config"
)

// Tetos de segurança da paginação: quando atingidos, a busca para com aviso
// e devolve o que já acumulou.
const (
	SearchPageSize       = 100
	MaxSearchResults     = 10000
	MaxEngagementResults = 2000
	MaxDealsPerOwner     = 5000
	MaxOwners            = 500
)

var ErrMissingAccessToken = errors.New("token de acesso do HubSpot não configurado")

type Client interface {
	SearchObjects(objectType string, request hubspotdomain.SearchRequest, maxResults int) ([]hubspotdomain.Object, error)
	ListObjects(objectType string, properties []string, maxResults int) ([]hubspotdomain.Object, error)
	GetObject(objectType, objectID string, properties []string) (*hubspotdomain.Object, error)
	UpdateObject(objectType, objectID string, properties map[string]string) error
	BatchReadObjects(objectType string, ids []string, properties []string) ([]hubspotdomain.Object, error)
	BatchAssociations(fromType, toType string, ids []string) (map[string][]string, error)
	LegacyMeetingEngagements(meetingID string) ([]string, error)
	GetEngagement(engagementID string) (*hubspotdomain.Engagement, error)
	ListOwners() ([]hubspotdomain.Owner, error)
	ListPipelines(objectType string) ([]hubspotdomain.Pipeline, error)
	ListSequences(userID string) ([]hubspotdomain.Sequence, error)
	HandleResponse(resp *http.Response) ([]byte, error)
}

type HubSpotClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &HubSpotClient{
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
		config: cfg,
	}
}

// doRequest executa uma requisição autenticada contra a API do HubSpot.
// A ausência do token falha imediatamente, antes de qualquer chamada de rede.
func (c *HubSpotClient) doRequest(method, path string, payload any) ([]byte, error) {
	if c.config.HubSpot.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.config.HubSpot.URL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.HubSpot.AccessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// HandleResponse lê o corpo e converte status não-2xx em erro carregando
// status e corpo cru, para o chamador decidir o que fazer.
func (c *HubSpotClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("requisição ao HubSpot falhou com status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
