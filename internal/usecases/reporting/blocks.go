package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

// Limiar do ícone de métrica quando o bloco não define um
const defaultSuccessThreshold = 1.0

// Fração do limiar de sucesso abaixo da qual o ícone vira alerta
const warningFraction = 0.7

// statusDot é o indicador dos blocos de funil: verde a partir de 100% da
// meta, amarelo a partir de 80%, vermelho abaixo disso.
func statusDot(ratio float64) string {
	switch {
	case ratio >= 1.0:
		return "🟢"
	case ratio >= 0.8:
		return "🟡"
	default:
		return "🔴"
	}
}

// metricIcon usa um esquema de limiar diferente do statusDot, de propósito:
// sucesso no limiar do bloco, alerta a partir de 70% dele.
func metricIcon(ratio, successThreshold float64) string {
	if successThreshold <= 0 {
		successThreshold = defaultSuccessThreshold
	}

	switch {
	case ratio >= successThreshold:
		return "✅"
	case ratio >= warningFraction*successThreshold:
		return "⚠️"
	default:
		return "❌"
	}
}

// metricValue resolve o nome de métrica de um bloco contra as métricas do dia
func metricValue(metrics *domain.DailyMetrics, name string) (float64, bool) {
	switch name {
	case "meetings_booked":
		return float64(metrics.MeetingsBooked), true
	case "meetings_held":
		return float64(metrics.MeetingsHeld), true
	case "no_shows":
		return float64(metrics.NoShows), true
	case "canceled":
		return float64(metrics.Canceled), true
	case "qualified_opps":
		return float64(metrics.QualifiedOpps), true
	case "qualified_advanced":
		return float64(metrics.QualifiedAdvanced), true
	case "qualified_sold":
		return float64(metrics.QualifiedSold), true
	case "disqualified":
		return float64(metrics.Disqualified), true
	case "conversions":
		return float64(metrics.Conversions), true
	case "deals_created":
		return float64(metrics.DealsCreated), true
	case "deals_lost":
		return float64(metrics.DealsLost), true
	case "revenue":
		return metrics.Revenue, true
	case "asp":
		return metrics.ASP, true
	case "calls_connected":
		return float64(metrics.CallsConnected), true
	case "emails_replied":
		return float64(metrics.EmailsReplied), true
	}

	return 0, false
}

func goalFor(pulse *domain.DailyPulse, metric string) *domain.GoalStatus {
	for _, goal := range pulse.Goals {
		if goal.Metric == metric {
			return goal
		}
	}

	return nil
}

func formatValue(metric string, value float64) string {
	if metric == "revenue" || metric == "asp" {
		return fmt.Sprintf("$%.2f", value)
	}

	return fmt.Sprintf("%d", int(value))
}

type renderContext struct {
	pulse    *domain.DailyPulse
	meetings []*domain.EnrichedMeeting
}

// renderBlock converte um bloco do template em linhas de texto
func renderBlock(block domain.ReportBlockDef, ctx *renderContext) []string {
	metrics := ctx.pulse.Metrics

	switch block.Type {
	case domain.BlockHeader:
		return []string{fmt.Sprintf("# %s — %s", block.Text, ctx.pulse.Date)}

	case domain.BlockSection:
		return []string{fmt.Sprintf("## %s", block.Text)}

	case domain.BlockDivider:
		return []string{"---"}

	case domain.BlockAlert:
		return []string{fmt.Sprintf("⚠️ %s", block.Text)}

	case domain.BlockInsight:
		return []string{fmt.Sprintf("💡 %s", block.Text)}

	case domain.BlockMetric:
		value, ok := metricValue(metrics, block.Metric)
		if !ok {
			return nil
		}

		if goal := goalFor(ctx.pulse, block.Metric); goal != nil {
			icon := metricIcon(goal.PercentToGoal, block.SuccessThreshold)
			return []string{fmt.Sprintf(
				"%s %s: %s / %s",
				icon, block.Label, formatValue(block.Metric, value), formatValue(block.Metric, goal.Target),
			)}
		}

		return []string{fmt.Sprintf("%s: %s", block.Label, formatValue(block.Metric, value))}

	case domain.BlockMagicFormula:
		lines := make([]string, 0, len(ctx.pulse.Goals))
		for _, goal := range ctx.pulse.Goals {
			lines = append(lines, fmt.Sprintf(
				"%s %s: %s / %s (%.0f%%)",
				statusDot(goal.PercentToGoal),
				goalLabel(goal.Metric),
				formatValue(goal.Metric, goal.Value),
				formatValue(goal.Metric, goal.Target),
				goal.PercentToGoal*100,
			))
		}
		return lines

	case domain.BlockStatPair:
		first, okFirst := metricValue(metrics, block.Metric)
		second, okSecond := metricValue(metrics, block.SecondMetric)
		if !okFirst || !okSecond {
			return nil
		}

		return []string{fmt.Sprintf(
			"%s: %s | %s: %s",
			block.Label, formatValue(block.Metric, first),
			block.SecondLabel, formatValue(block.SecondMetric, second),
		)}

	case domain.BlockBreakdown:
		return []string{fmt.Sprintf(
			"Qualificadas: %d (avançou %d, vendeu %d) | Desqualificadas: %d | No-show: %d | Canceladas: %d",
			metrics.QualifiedOpps,
			metrics.QualifiedAdvanced,
			metrics.QualifiedSold,
			metrics.Disqualified,
			metrics.NoShows,
			metrics.Canceled,
		)}

	case domain.BlockMeetingsSummary:
		if len(ctx.meetings) == 0 {
			return []string{"Nenhuma reunião no dia."}
		}

		lines := make([]string, 0, len(ctx.meetings)+1)
		lines = append(lines, fmt.Sprintf("Reuniões do dia (%d):", len(ctx.meetings)))
		for _, meeting := range ctx.meetings {
			outcome := "sem resultado"
			if meeting.Outcome != nil && *meeting.Outcome != "" {
				outcome = *meeting.Outcome
			}

			owner := ""
			if meeting.OwnerName != nil {
				owner = " — " + *meeting.OwnerName
			}

			lines = append(lines, fmt.Sprintf("- %s%s (%s)", meeting.Title, owner, outcome))
		}
		return lines
	}

	return nil
}

func goalLabel(metric string) string {
	switch metric {
	case "meetings_held":
		return "Reuniões realizadas"
	case "qualified_opps":
		return "Oportunidades qualificadas"
	case "conversions":
		return "Conversões"
	case "revenue":
		return "Receita"
	}

	return metric
}

func renderReport(template *domain.ReportTemplate, ctx *renderContext) string {
	lines := make([]string, 0)

	for _, block := range template.Blocks {
		rendered := renderBlock(block, ctx)
		if len(rendered) == 0 {
			continue
		}
		lines = append(lines, rendered...)
	}

	return strings.Join(lines, "\n")
}
