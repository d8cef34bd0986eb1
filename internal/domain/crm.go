package domain

import "time"

// Tipos vindos do CRM já convertidos para uso interno

type Deal struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Amount     float64    `json:"amount"`
	StageID    string     `json:"stageId"`
	StageLabel string     `json:"stageLabel,omitempty"`
	PipelineID string     `json:"pipelineId"`
	CloseDate  *time.Time `json:"closeDate,omitempty"`
	CreateDate *time.Time `json:"createDate,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	OwnerID    *string    `json:"ownerId,omitempty"`
	LeadSource *string    `json:"leadSource,omitempty"`
	Won        bool       `json:"won"`
	Lost       bool       `json:"lost"`
}

type CRMMeeting struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	StartTime    *time.Time `json:"startTime,omitempty"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
	Outcome      *string    `json:"outcome,omitempty"`
	OwnerID      *string    `json:"ownerId,omitempty"`
	ActivityType *string    `json:"activityType,omitempty"`
	Source       *string    `json:"source,omitempty"`
	EngagementID *string    `json:"engagementId,omitempty"`
}

// EffectiveStart é o timestamp mais específico disponível da reunião
func (m *CRMMeeting) EffectiveStart() *time.Time {
	if m.StartTime != nil {
		return m.StartTime
	}

	return m.Timestamp
}

type Call struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	OwnerID   *string    `json:"ownerId,omitempty"`
}

type Email struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	OwnerID   *string    `json:"ownerId,omitempty"`
}

type Owner struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserID    *int64 `json:"userId,omitempty"`
}

func (o Owner) FullName() string {
	if o.FirstName == "" {
		return o.LastName
	}
	if o.LastName == "" {
		return o.FirstName
	}

	return o.FirstName + " " + o.LastName
}

type PipelineStage struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Won   bool   `json:"won"`
	Lost  bool   `json:"lost"`
}

type Pipeline struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Stages []PipelineStage `json:"stages"`
}

type Sequence struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
