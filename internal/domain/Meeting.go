package domain

import "time"

// MeetingContact é o contato primário resolvido de uma reunião
type MeetingContact struct {
	ID        string  `json:"id"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// EnrichedMeeting é a reunião do CRM enriquecida com as resoluções que a
// listagem de reuniões do dashboard precisa.
type EnrichedMeeting struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	StartTime      *time.Time      `json:"startTime,omitempty"`
	EndTime        *time.Time      `json:"endTime,omitempty"`
	Outcome        *string         `json:"outcome,omitempty"`
	OutcomeTag     MeetingOutcome  `json:"outcomeTag"`
	OwnerID        *string         `json:"ownerId,omitempty"`
	OwnerName      *string         `json:"ownerName,omitempty"`
	LeadSource     *string         `json:"leadSource,omitempty"`
	DealID         *string         `json:"dealId,omitempty"`
	PrimaryContact *MeetingContact `json:"primaryContact,omitempty"`
	RecordingURL   *string         `json:"recordingUrl,omitempty"`
	CoachingScore  *float64        `json:"coachingScore,omitempty"`
}
