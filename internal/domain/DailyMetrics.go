package domain

import "time"

type MetricsFilters struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	OwnerIDs  []string   `json:"ownerIds,omitempty"`
	TeamID    *string    `json:"teamId,omitempty"`
}

// DailyMetrics agrega os números de um dia do calendário local (YYYY-MM-DD).
// Derivado a cada requisição, nunca persistido fora de um snapshot de relatório.
type DailyMetrics struct {
	Date              string  `json:"date"`
	MeetingsBooked    int     `json:"meetingsBooked"`
	MeetingsHeld      int     `json:"meetingsHeld"`
	NoShows           int     `json:"noShows"`
	Canceled          int     `json:"canceled"`
	QualifiedOpps     int     `json:"qualifiedOpps"`
	QualifiedAdvanced int     `json:"qualifiedAdvanced"`
	QualifiedSold     int     `json:"qualifiedSold"`
	Disqualified      int     `json:"disqualified"`
	DealsCreated      int     `json:"dealsCreated"`
	Conversions       int     `json:"conversions"`
	DealsLost         int     `json:"dealsLost"`
	Revenue           float64 `json:"revenue"`
	ASP               float64 `json:"asp"`
	CallsConnected    int     `json:"callsConnected"`
	EmailsReplied     int     `json:"emailsReplied"`
}

// GoalStatus compara uma métrica do dia com a meta resolvida
type GoalStatus struct {
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	Target        float64 `json:"target"`
	PercentToGoal float64 `json:"percentToGoal"`
	Met           bool    `json:"met"`
}

// DailyPulse é o resultado final de um dia: métricas + reconciliação de metas
type DailyPulse struct {
	Date        string        `json:"date"`
	Scope       string        `json:"scope"` // individual | team_total
	OwnerCount  int           `json:"ownerCount,omitempty"`
	Metrics     *DailyMetrics `json:"metrics"`
	Goals       []*GoalStatus `json:"goals"`
	AllGoalsMet bool          `json:"allGoalsMet"`
}

const (
	ScopeIndividual = "individual"
	ScopeTeamTotal  = "team_total"
)
