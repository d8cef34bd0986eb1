package domain

import "time"

type MappingSource string

const (
	MappingSourceAuto   MappingSource = "auto"
	MappingSourceManual MappingSource = "manual"
)

// MeetingMapping liga uma reunião do CRM a no máximo uma gravação.
// Chave única por CRMMeetingID: salvar de novo sobrescreve a anterior.
type MeetingMapping struct {
	ID           string        `json:"id"`
	CRMMeetingID string        `json:"crmMeetingId"`
	RecordingID  string        `json:"recordingId"`
	ShareURL     *string       `json:"shareUrl,omitempty"`
	Source       MappingSource `json:"source"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// MappingSyncResult resume uma rodada de reconciliação automática
type MappingSyncResult struct {
	Scanned        int `json:"scanned"`
	AlreadyMapped  int `json:"alreadyMapped"`
	Mapped         int `json:"mapped"`
	Skipped        int `json:"skipped"` // sem candidato confiável
	Ambiguous      int `json:"ambiguous"`
	MissingContact int `json:"missingContact"`
}
