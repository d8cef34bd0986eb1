package domain

import "time"

type TargetScope string

const (
	TargetScopeOwner  TargetScope = "owner"
	TargetScopeTeam   TargetScope = "team"
	TargetScopeGlobal TargetScope = "global"
)

// Valores padrão quando nenhuma meta foi configurada
const (
	DefaultMeetingsHeldTarget     = 5
	DefaultQualifiedOppsTarget    = 3
	DefaultConversionsTarget      = 2
	DefaultMRRPerConversionTarget = 300.0
)

// Target define as metas diárias de desempenho. No máximo uma linha por
// combinação (escopo, owner, team).
type Target struct {
	ID               string      `json:"id"`
	Scope            TargetScope `json:"scope"`
	OwnerID          *string     `json:"ownerId,omitempty"`
	TeamID           *string     `json:"teamId,omitempty"`
	MeetingsHeld     int         `json:"meetingsHeld"`
	QualifiedOpps    int         `json:"qualifiedOpps"`
	Conversions      int         `json:"conversions"`
	MRRPerConversion float64     `json:"mrrPerConversion"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// DefaultTarget sintetiza a meta padrão embutida
func DefaultTarget() *Target {
	return &Target{
		Scope:            TargetScopeGlobal,
		MeetingsHeld:     DefaultMeetingsHeldTarget,
		QualifiedOpps:    DefaultQualifiedOppsTarget,
		Conversions:      DefaultConversionsTarget,
		MRRPerConversion: DefaultMRRPerConversionTarget,
	}
}

// ScaleForOwners multiplica as metas de contagem pelo número de owners.
// O valor monetário por conversão não escala: é uma média por negócio,
// independente do tamanho do time.
func (t *Target) ScaleForOwners(ownerCount int) *Target {
	if ownerCount <= 1 {
		return t
	}

	scaled := *t
	scaled.MeetingsHeld = t.MeetingsHeld * ownerCount
	scaled.QualifiedOpps = t.QualifiedOpps * ownerCount
	scaled.Conversions = t.Conversions * ownerCount

	return &scaled
}

// RevenueTarget deriva a meta de receita das conversões esperadas
func (t *Target) RevenueTarget() float64 {
	return float64(t.Conversions) * t.MRRPerConversion
}
