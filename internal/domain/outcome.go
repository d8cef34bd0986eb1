package domain

import (
	"regexp"
	"strings"
)

// MeetingOutcome é a classificação canônica de um resultado de reunião.
// O CRM devolve strings livres ("No Show", "Qualified - Sold", ...), então a
// classificação é feita por substring, sem diferenciar maiúsculas.
type MeetingOutcome string

const (
	OutcomeUnknown           MeetingOutcome = "unknown"
	OutcomeNoShow            MeetingOutcome = "no_show"
	OutcomeCanceled          MeetingOutcome = "canceled"
	OutcomeDisqualified      MeetingOutcome = "disqualified"
	OutcomeQualifiedSold     MeetingOutcome = "qualified_sold"
	OutcomeQualifiedAdvanced MeetingOutcome = "qualified_advanced"
	OutcomeQualified         MeetingOutcome = "qualified"
)

type outcomeRule struct {
	matches func(normalized string) bool
	tag     MeetingOutcome
}

// A ordem importa: a primeira regra que casar define a classificação.
// "disqualified" precisa vir antes de "qualified" porque contém "qualified"
// como substring.
var outcomeRules = []outcomeRule{
	{
		matches: func(s string) bool {
			return strings.Contains(s, "no show") ||
				strings.Contains(s, "no-show") ||
				strings.Contains(s, "no_show")
		},
		tag: OutcomeNoShow,
	},
	{
		matches: func(s string) bool {
			return strings.Contains(normalizeSeparators(s), "cancel")
		},
		tag: OutcomeCanceled,
	},
	{
		matches: func(s string) bool {
			return strings.Contains(s, "disqual") || strings.Contains(s, "unqual")
		},
		tag: OutcomeDisqualified,
	},
	{
		matches: func(s string) bool {
			return strings.Contains(s, "qualified") && strings.Contains(s, "sold")
		},
		tag: OutcomeQualifiedSold,
	},
	{
		matches: func(s string) bool {
			return strings.Contains(s, "qualified") && strings.Contains(s, "advance")
		},
		tag: OutcomeQualifiedAdvanced,
	},
	{
		matches: func(s string) bool {
			return strings.Contains(s, "qualified")
		},
		tag: OutcomeQualified,
	},
}

var separatorPattern = regexp.MustCompile(`[_-]+`)

func normalizeSeparators(s string) string {
	return separatorPattern.ReplaceAllString(s, " ")
}

// ClassifyOutcome classifica qualquer string de resultado, inclusive vazia ou
// desconhecida, sem nunca falhar.
func ClassifyOutcome(outcome string) MeetingOutcome {
	normalized := strings.ToLower(strings.TrimSpace(outcome))
	if normalized == "" {
		return OutcomeUnknown
	}

	for _, rule := range outcomeRules {
		if rule.matches(normalized) {
			return rule.tag
		}
	}

	return OutcomeUnknown
}

// IsQualified indica se a classificação representa uma oportunidade qualificada
func (o MeetingOutcome) IsQualified() bool {
	return o == OutcomeQualified || o == OutcomeQualifiedAdvanced || o == OutcomeQualifiedSold
}

var wonWordPattern = regexp.MustCompile(`\bwon\b`)

// MatchesWonStage identifica estágios/resultados de negócio fechado-ganho
func MatchesWonStage(label string) bool {
	normalized := strings.ToLower(strings.TrimSpace(label))

	// "closedwon" é o id de estágio padrão do CRM, sem separador
	return strings.Contains(normalized, "deal won") ||
		strings.Contains(normalized, "closed won") ||
		strings.Contains(normalized, "closedwon") ||
		wonWordPattern.MatchString(normalized)
}

// MatchesLostStage identifica estágios de negócio fechado-perdido
func MatchesLostStage(label string) bool {
	return strings.Contains(strings.ToLower(label), "lost")
}

// IsCallConnected verifica o status de uma ligação
func IsCallConnected(status string) bool {
	normalized := strings.ToLower(status)

	return strings.Contains(normalized, "completed") ||
		strings.Contains(normalized, "connected")
}

// IsEmailReplied verifica o status de um e-mail
func IsEmailReplied(status string) bool {
	return strings.Contains(strings.ToLower(status), "replied")
}
