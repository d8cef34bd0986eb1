package aggregating

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

// Intervalo padrão quando o chamador não informa datas
const defaultRangeDays = 7

type Aggregator interface {
	MagicFormula(filters *domain.MetricsFilters, ownerCount int) ([]*domain.DailyPulse, error)
}

type Service struct {
	crm      CRMSource
	resolver TargetResolver
}

func NewService(crm CRMSource, resolver TargetResolver) Aggregator {
	return &Service{
		crm:      crm,
		resolver: resolver,
	}
}

// MagicFormula calcula o funil diário (reuniões realizadas → oportunidades
// qualificadas → conversões → receita) e reconcilia cada dia contra a meta
// resolvida para o mesmo escopo. Devolve uma entrada por dia do intervalo,
// inclusive nas duas pontas, mesmo para dias sem dados.
func (s *Service) MagicFormula(filters *domain.MetricsFilters, ownerCount int) ([]*domain.DailyPulse, error) {
	filters = normalizeFilters(filters)

	var (
		meetings []*domain.CRMMeeting
		deals    []*domain.Deal
		calls    []*domain.Call
		emails   []*domain.Email

		meetingsErr error
		dealsErr    error
	)

	// Reuniões e negócios são pré-requisitos do resultado: erro aborta a
	// requisição. Ligações e e-mails degradam para vazio com aviso.
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		meetings, meetingsErr = s.crm.ListMeetings(filters)
	}()

	go func() {
		defer wg.Done()
		deals, dealsErr = s.crm.ListDeals(filters)
	}()

	go func() {
		defer wg.Done()
		fetched, err := s.crm.ListCalls(filters)
		if err != nil {
			logrus.WithError(err).Warn("agregação: falha ao buscar ligações, seguindo sem")
			return
		}
		calls = fetched
	}()

	go func() {
		defer wg.Done()
		fetched, err := s.crm.ListEmails(filters)
		if err != nil {
			logrus.WithError(err).Warn("agregação: falha ao buscar e-mails, seguindo sem")
			return
		}
		emails = fetched
	}()

	wg.Wait()

	if meetingsErr != nil {
		logrus.WithError(meetingsErr).Error("agregação: falha ao buscar reuniões")
		return nil, meetingsErr
	}
	if dealsErr != nil {
		logrus.WithError(dealsErr).Error("agregação: falha ao buscar negócios")
		return nil, dealsErr
	}

	if ownerCount <= 0 {
		ownerCount = len(filters.OwnerIDs)
	}

	target, err := s.resolver.Resolve(filters.OwnerIDs, filters.TeamID, ownerCount)
	if err != nil {
		return nil, err
	}

	buckets := buildDailyMetrics(meetings, deals, calls, emails)

	results := make([]*domain.DailyPulse, 0)
	utils.EachDay(*filters.StartDate, *filters.EndDate, func(day time.Time) {
		key := utils.DayKey(day)

		metrics, ok := buckets[key]
		if !ok {
			metrics = &domain.DailyMetrics{Date: key}
		}

		results = append(results, reconcileDay(metrics, target, ownerCount))
	})

	return results, nil
}

func normalizeFilters(filters *domain.MetricsFilters) *domain.MetricsFilters {
	if filters == nil {
		filters = &domain.MetricsFilters{}
	}

	normalized := *filters

	if normalized.EndDate == nil {
		now := time.Now()
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		normalized.EndDate = &end
	}

	if normalized.StartDate == nil {
		start := normalized.EndDate.AddDate(0, 0, -(defaultRangeDays - 1))
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		normalized.StartDate = &start
	}

	return &normalized
}

// buildDailyMetrics agrupa os registros por dia do calendário local e
// classifica os resultados pela tabela de regras do domínio.
func buildDailyMetrics(
	meetings []*domain.CRMMeeting,
	deals []*domain.Deal,
	calls []*domain.Call,
	emails []*domain.Email,
) map[string]*domain.DailyMetrics {
	buckets := make(map[string]*domain.DailyMetrics)

	bucket := func(t *time.Time) *domain.DailyMetrics {
		if t == nil {
			return nil
		}

		key := utils.DayKey(*t)
		if _, ok := buckets[key]; !ok {
			buckets[key] = &domain.DailyMetrics{Date: key}
		}

		return buckets[key]
	}

	for _, meeting := range meetings {
		metrics := bucket(meeting.EffectiveStart())
		if metrics == nil {
			continue
		}

		metrics.MeetingsBooked++

		outcome := ""
		if meeting.Outcome != nil {
			outcome = *meeting.Outcome
		}

		switch tag := domain.ClassifyOutcome(outcome); tag {
		case domain.OutcomeNoShow:
			metrics.NoShows++
		case domain.OutcomeCanceled:
			metrics.Canceled++
		case domain.OutcomeDisqualified:
			metrics.Disqualified++
		case domain.OutcomeQualifiedSold:
			metrics.QualifiedOpps++
			metrics.QualifiedSold++
		case domain.OutcomeQualifiedAdvanced:
			metrics.QualifiedOpps++
			metrics.QualifiedAdvanced++
		case domain.OutcomeQualified:
			metrics.QualifiedOpps++
		}
	}

	// Os deals chegam filtrados por closedate, então dealsCreated só enxerga
	// criações cujo fechamento também caiu na janela consultada.
	for _, deal := range deals {
		if created := bucket(deal.CreateDate); created != nil {
			created.DealsCreated++
		}

		closed := bucket(deal.CloseDate)
		if closed == nil {
			continue
		}

		if deal.Won {
			closed.Conversions++
			closed.Revenue += deal.Amount
		}
		if deal.Lost {
			closed.DealsLost++
		}
	}

	for _, call := range calls {
		metrics := bucket(call.Timestamp)
		if metrics != nil && domain.IsCallConnected(call.Status) {
			metrics.CallsConnected++
		}
	}

	for _, email := range emails {
		metrics := bucket(email.Timestamp)
		if metrics != nil && domain.IsEmailReplied(email.Status) {
			metrics.EmailsReplied++
		}
	}

	for _, metrics := range buckets {
		finalizeDay(metrics)
	}

	return buckets
}

// finalizeDay fecha as métricas derivadas do dia. Realizadas nunca fica
// negativa, mesmo com dados anômalos em que no-show + canceladas excede o
// total agendado.
func finalizeDay(metrics *domain.DailyMetrics) {
	held := metrics.MeetingsBooked - metrics.NoShows - metrics.Canceled
	if held < 0 {
		held = 0
	}
	metrics.MeetingsHeld = held

	metrics.Revenue = utils.RoundWithTwoDecimalPlace(metrics.Revenue)

	if metrics.Conversions > 0 {
		metrics.ASP = utils.RoundWithTwoDecimalPlace(metrics.Revenue / float64(metrics.Conversions))
	}
}

// reconcileDay junta as métricas do dia com a meta resolvida
func reconcileDay(metrics *domain.DailyMetrics, target *domain.Target, ownerCount int) *domain.DailyPulse {
	goals := []*domain.GoalStatus{
		goalStatus("meetings_held", float64(metrics.MeetingsHeld), float64(target.MeetingsHeld)),
		goalStatus("qualified_opps", float64(metrics.QualifiedOpps), float64(target.QualifiedOpps)),
		goalStatus("conversions", float64(metrics.Conversions), float64(target.Conversions)),
		goalStatus("revenue", metrics.Revenue, target.RevenueTarget()),
	}

	allMet := true
	for _, goal := range goals {
		if !goal.Met {
			allMet = false
			break
		}
	}

	pulse := &domain.DailyPulse{
		Date:        metrics.Date,
		Scope:       domain.ScopeIndividual,
		Metrics:     metrics,
		Goals:       goals,
		AllGoalsMet: allMet,
	}

	if ownerCount > 1 {
		pulse.Scope = domain.ScopeTeamTotal
		pulse.OwnerCount = ownerCount
	}

	return pulse
}

func goalStatus(metric string, value, target float64) *domain.GoalStatus {
	percent := 0.0
	if target > 0 {
		percent = utils.RoundWithTwoDecimalPlace(value / target)
	}

	return &domain.GoalStatus{
		Metric:        metric,
		Value:         value,
		Target:        target,
		PercentToGoal: percent,
		Met:           value >= target,
	}
}
