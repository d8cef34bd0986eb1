package grainclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	graindomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/domain"
	"github.com/vfg2006/sales-pulse-api/internal/config"
)

// Limite máximo aceito pela listagem de gravações
const MaxListLimit = 500

var ErrMissingAPIKey = errors.New("chave de API do serviço de gravações não configurada")

type Client interface {
	ListRecordings(start, end time.Time, limit int) ([]graindomain.Recording, error)
	GetRecording(recordingID string) (*graindomain.Recording, error)
	GetCoachingFeedback(recordingID string) (*graindomain.CoachingFeedback, error)
}

type GrainClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GrainClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

func (c *GrainClient) doRequest(path string) ([]byte, int, error) {
	if c.config.Grain.APIKey == "" {
		return nil, 0, ErrMissingAPIKey
	}

	req, err := http.NewRequest(http.MethodGet, c.config.Grain.URL+path, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Grain.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return body, resp.StatusCode, fmt.Errorf(
			"requisição ao serviço de gravações falhou com status %d: %s",
			resp.StatusCode, string(body),
		)
	}

	return body, resp.StatusCode, nil
}

func (c *GrainClient) ListRecordings(start, end time.Time, limit int) ([]graindomain.Recording, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	params := url.Values{}
	params.Set("start_datetime", start.UTC().Format(time.RFC3339))
	params.Set("end_datetime", end.UTC().Format(time.RFC3339))
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("include_participants", "true")

	body, _, err := c.doRequest("/recordings?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response struct {
		Recordings []json.RawMessage `json:"recordings"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a listagem de gravações")
	}

	recordings := make([]graindomain.Recording, 0, len(response.Recordings))
	for _, raw := range response.Recordings {
		recording, err := decodeRecording(raw)
		if err != nil {
			return nil, err
		}
		recordings = append(recordings, *recording)
	}

	return recordings, nil
}

func (c *GrainClient) GetRecording(recordingID string) (*graindomain.Recording, error) {
	body, _, err := c.doRequest(fmt.Sprintf("/recordings/%s?include_participants=true", recordingID))
	if err != nil {
		return nil, err
	}

	return decodeRecording(body)
}

// GetCoachingFeedback devolve nil, e não erro, quando a gravação não tem
// feedback de coaching.
func (c *GrainClient) GetCoachingFeedback(recordingID string) (*graindomain.CoachingFeedback, error) {
	body, status, err := c.doRequest(fmt.Sprintf("/recordings/%s/coaching", recordingID))
	if err != nil {
		if status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var feedback graindomain.CoachingFeedback
	if err := json.Unmarshal(body, &feedback); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o feedback de coaching")
	}

	feedback.RecordingID = recordingID

	return &feedback, nil
}

// decodeRecording decodifica o payload duas vezes: tipado para os campos
// estáveis e em mapa para os campos de link que variam por conta.
func decodeRecording(raw []byte) (*graindomain.Recording, error) {
	var payload struct {
		ID            string                    `json:"id"`
		Title         string                    `json:"title"`
		StartDatetime string                    `json:"start_datetime"`
		DurationMS    int64                     `json:"duration"`
		Summary       string                    `json:"summary"`
		Participants  []graindomain.Participant `json:"participants"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a gravação")
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar os campos da gravação")
	}

	recording := &graindomain.Recording{
		ID:           payload.ID,
		Title:        payload.Title,
		DurationMS:   payload.DurationMS,
		Summary:      payload.Summary,
		Participants: payload.Participants,
		ShareURL:     graindomain.ExtractShareURL(fields),
	}

	if payload.StartDatetime != "" {
		if start, err := time.Parse(time.RFC3339, payload.StartDatetime); err == nil {
			recording.Start = &start
		}
	}

	return recording, nil
}
