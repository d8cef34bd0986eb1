package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

// Quando o pulso diário roda sem seleção de owners, assume o tamanho padrão
// do time para escalar as metas globais.
const defaultTeamSize = 3

type Aggregator interface {
	MagicFormula(filters *domain.MetricsFilters, ownerCount int) ([]*domain.DailyPulse, error)
}

type MeetingLister interface {
	ListMeetings(filters *domain.MetricsFilters) ([]*domain.EnrichedMeeting, error)
}

type GenerateRequest struct {
	UserID     string
	TemplateID string
	Template   *domain.ReportTemplate // template customizado, opcional
	Day        *time.Time
	OwnerIDs   []string
	TeamID     *string
}

type Generator interface {
	Generate(request GenerateRequest) (*domain.GeneratedReport, error)
}

type Service struct {
	aggregator       Aggregator
	meetings         MeetingLister
	reportRepository repository.GeneratedReportRepository
}

func NewService(
	aggregator Aggregator,
	meetingLister MeetingLister,
	reportRepo repository.GeneratedReportRepository,
) Generator {
	return &Service{
		aggregator:       aggregator,
		meetings:         meetingLister,
		reportRepository: reportRepo,
	}
}

// Generate monta o relatório de um dia a partir dos blocos do template e
// persiste o snapshot por (usuário, template, dia) — exceto o pulso diário
// ad-hoc, que nunca é persistido.
func (s *Service) Generate(request GenerateRequest) (*domain.GeneratedReport, error) {
	if request.UserID == "" {
		return nil, fmt.Errorf("o identificador do usuário é obrigatório")
	}

	template, err := resolveTemplate(request)
	if err != nil {
		return nil, err
	}

	day := time.Now()
	if request.Day != nil {
		day = *request.Day
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	filters := &domain.MetricsFilters{
		StartDate: &start,
		EndDate:   &end,
		OwnerIDs:  request.OwnerIDs,
		TeamID:    request.TeamID,
	}

	ownerCount := len(request.OwnerIDs)
	if ownerCount == 0 && template.ID == domain.DailySalesPulseTemplateID {
		ownerCount = defaultTeamSize
	}

	pulses, err := s.aggregator.MagicFormula(filters, ownerCount)
	if err != nil {
		return nil, err
	}

	if len(pulses) == 0 {
		return nil, fmt.Errorf("a agregação não devolveu nenhum dia para %s", utils.DayKey(day))
	}
	pulse := pulses[0]

	// A lista de reuniões só alimenta o bloco de resumo: falha degrada o
	// bloco, não o relatório.
	var enriched []*domain.EnrichedMeeting
	if templateHasBlock(template, domain.BlockMeetingsSummary) {
		enriched, err = s.meetings.ListMeetings(filters)
		if err != nil {
			logrus.WithError(err).Warn("relatórios: falha ao listar reuniões do dia, bloco de resumo ficará vazio")
			enriched = nil
		}
	}

	report := &domain.GeneratedReport{
		UserID:     request.UserID,
		TemplateID: template.ID,
		Day:        pulse.Date,
		Text:       renderReport(template, &renderContext{pulse: pulse, meetings: enriched}),
		Snapshot:   pulse,
	}

	if template.ID != domain.DailySalesPulseTemplateID {
		if err := s.reportRepository.SaveOrUpdate(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func resolveTemplate(request GenerateRequest) (*domain.ReportTemplate, error) {
	if request.Template != nil {
		if len(request.Template.Blocks) == 0 {
			return nil, fmt.Errorf("o template customizado precisa de ao menos um bloco")
		}
		return request.Template, nil
	}

	if request.TemplateID == "" || request.TemplateID == domain.DailySalesPulseTemplateID {
		return dailySalesPulseTemplate(), nil
	}

	return nil, fmt.Errorf("template desconhecido: %s", request.TemplateID)
}

func templateHasBlock(template *domain.ReportTemplate, blockType domain.BlockType) bool {
	for _, block := range template.Blocks {
		if block.Type == blockType {
			return true
		}
	}

	return false
}

// dailySalesPulseTemplate é o template embutido do pulso diário de vendas
func dailySalesPulseTemplate() *domain.ReportTemplate {
	return &domain.ReportTemplate{
		ID:   domain.DailySalesPulseTemplateID,
		Name: "Pulso diário de vendas",
		Blocks: []domain.ReportBlockDef{
			{Type: domain.BlockHeader, Text: "Pulso diário de vendas"},
			{Type: domain.BlockMagicFormula},
			{Type: domain.BlockDivider},
			{Type: domain.BlockSection, Text: "Atividade"},
			{Type: domain.BlockStatPair, Label: "Ligações conectadas", Metric: "calls_connected", SecondLabel: "E-mails respondidos", SecondMetric: "emails_replied"},
			{Type: domain.BlockMetric, Label: "Ticket médio", Metric: "asp"},
			{Type: domain.BlockDivider},
			{Type: domain.BlockSection, Text: "Funil do dia"},
			{Type: domain.BlockBreakdown},
			{Type: domain.BlockMeetingsSummary},
		},
	}
}
