package meetings

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

// O CRM popula o vínculo reunião-engagement de forma inconsistente, então o
// resultado é resolvido por uma cadeia explícita de estratégias em ordem de
// custo: primeira que devolver um engagement vence.
type engagementStrategy struct {
	name    string
	resolve func(meeting *domain.CRMMeeting, batched []string) (engagementID string, ok bool)
}

func (s *Service) engagementStrategies() []engagementStrategy {
	return []engagementStrategy{
		{
			name: "propriedade direta",
			resolve: func(meeting *domain.CRMMeeting, _ []string) (string, bool) {
				if meeting.EngagementID != nil && *meeting.EngagementID != "" {
					return *meeting.EngagementID, true
				}
				return "", false
			},
		},
		{
			name: "detalhe da reunião",
			resolve: func(meeting *domain.CRMMeeting, _ []string) (string, bool) {
				detail, err := s.crm.GetMeetingByID(meeting.ID)
				if err != nil || detail == nil {
					return "", false
				}
				if detail.EngagementID != nil && *detail.EngagementID != "" {
					return *detail.EngagementID, true
				}
				return "", false
			},
		},
		{
			// O lote já embute o fallback legado por id
			name: "associações em lote",
			resolve: func(_ *domain.CRMMeeting, batched []string) (string, bool) {
				if len(batched) > 0 {
					return batched[0], true
				}
				return "", false
			},
		},
	}
}

// resolveOutcome aplica as estratégias em ordem e consulta os metadados do
// engagement encontrado. Falha em qualquer etapa degrada para nil.
func (s *Service) resolveOutcome(meeting *domain.CRMMeeting, batched []string) *string {
	for _, strategy := range s.engagementStrategies() {
		engagementID, ok := strategy.resolve(meeting, batched)
		if !ok {
			continue
		}

		outcome, err := s.crm.GetEngagementOutcome(engagementID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"meeting_id":    meeting.ID,
				"engagement_id": engagementID,
				"strategy":      strategy.name,
				"error":         err.Error(),
			}).Warn("reuniões: falha ao consultar o engagement, tentando a próxima estratégia")
			continue
		}

		if outcome != nil && *outcome != "" {
			return outcome
		}
	}

	return nil
}
