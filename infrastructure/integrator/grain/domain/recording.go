package graindomain

import (
	"strings"
	"time"
)

type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Scope string `json:"scope"` // internal | external
}

type Recording struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Start        *time.Time    `json:"start,omitempty"`
	DurationMS   int64         `json:"durationMs,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	Participants []Participant `json:"participants,omitempty"`
	ShareURL     *string       `json:"shareUrl,omitempty"`
}

type CoachingFeedback struct {
	RecordingID string   `json:"recordingId"`
	Score       *float64 `json:"score,omitempty"`
	Summary     string   `json:"summary,omitempty"`
}

// Campos de link de compartilhamento conhecidos, em ordem de prioridade.
// O payload do serviço de gravações varia entre contas e versões.
var shareURLKeys = []string{
	"shareUrl",
	"share_url",
	"publicShareUrl",
	"public_share_url",
	"recordingUrl",
	"recording_url",
	"shareLink",
	"share_link",
}

// ExtractShareURL devolve o primeiro link de compartilhamento não vazio do
// payload cru, seguindo a ordem de prioridade conhecida.
func ExtractShareURL(raw map[string]any) *string {
	for _, key := range shareURLKeys {
		value, ok := raw[key].(string)
		if !ok {
			continue
		}

		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return &trimmed
		}
	}

	return nil
}
