package domain

import "time"

type BlockType string

const (
	BlockHeader          BlockType = "header"
	BlockSection         BlockType = "section"
	BlockDivider         BlockType = "divider"
	BlockMetric          BlockType = "metric"
	BlockMagicFormula    BlockType = "magic_formula"
	BlockStatPair        BlockType = "stat_pair"
	BlockInsight         BlockType = "insight"
	BlockBreakdown       BlockType = "breakdown"
	BlockMeetingsSummary BlockType = "meetings_summary"
	BlockAlert           BlockType = "alert"
)

// ReportBlockDef descreve um bloco de um template de relatório. Os campos
// usados dependem do tipo do bloco.
type ReportBlockDef struct {
	Type             BlockType `json:"type"`
	Text             string    `json:"text,omitempty"`             // header, section, insight, alert
	Label            string    `json:"label,omitempty"`            // metric, stat_pair
	Metric           string    `json:"metric,omitempty"`           // nome da métrica em DailyMetrics
	SecondLabel      string    `json:"secondLabel,omitempty"`      // stat_pair
	SecondMetric     string    `json:"secondMetric,omitempty"`     // stat_pair
	SuccessThreshold float64   `json:"successThreshold,omitempty"` // metric: razão para ✅ (padrão 1.0)
}

type ReportTemplate struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Blocks []ReportBlockDef `json:"blocks"`
}

// DailySalesPulseTemplateID é o template ad-hoc diário; seus relatórios não
// são persistidos.
const DailySalesPulseTemplateID = "dailySalesPulse"

// GeneratedReport é o snapshot persistido de um relatório gerado, um por
// (usuário, template, dia).
type GeneratedReport struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	TemplateID string      `json:"templateId"`
	Day        string      `json:"day"`
	Text       string      `json:"text"`
	Snapshot   *DailyPulse `json:"snapshot,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}
