package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

const generatedReportsTable = "generated_reports"

type GeneratedReportRepository interface {
	GetByKey(userID, templateID, day string) (*domain.GeneratedReport, error)
	SaveOrUpdate(report *domain.GeneratedReport) error
}

type generatedReportRepository struct {
	conn *postgres.Connection
}

func NewGeneratedReportRepository(conn *postgres.Connection) GeneratedReportRepository {
	return &generatedReportRepository{
		conn: conn,
	}
}

func (r *generatedReportRepository) GetByKey(userID, templateID, day string) (*domain.GeneratedReport, error) {
	reportSQL, reportArgs, err := squirrel.
		Select("id, user_id, template_id, day, text, snapshot, created_at, updated_at").
		From(generatedReportsTable).
		Where(squirrel.Eq{"user_id": userID, "template_id": templateID, "day": day}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(reportSQL, reportArgs...)

	report := &domain.GeneratedReport{}
	var snapshot []byte

	if err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.TemplateID,
		&report.Day,
		&report.Text,
		&snapshot,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &report.Snapshot); err != nil {
			return nil, fmt.Errorf("erro ao decodificar o snapshot do relatório: %w", err)
		}
	}

	return report, nil
}

// SaveOrUpdate grava o snapshot do relatório, um por (usuário, template, dia).
// Regerar o mesmo dia sobrescreve o snapshot anterior.
func (r *generatedReportRepository) SaveOrUpdate(report *domain.GeneratedReport) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id do relatório: %w", err)
	}

	var snapshot []byte
	if report.Snapshot != nil {
		snapshot, err = json.Marshal(report.Snapshot)
		if err != nil {
			return fmt.Errorf("erro ao serializar o snapshot do relatório: %w", err)
		}
	}

	query := squirrel.
		Insert(generatedReportsTable).
		Columns("id", "user_id", "template_id", "day", "text", "snapshot", "created_at", "updated_at").
		Values(
			id,
			report.UserID,
			report.TemplateID,
			report.Day,
			report.Text,
			snapshot,
			squirrel.Expr("NOW()"),
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (user_id, template_id, day) DO UPDATE SET
				text = EXCLUDED.text,
				snapshot = EXCLUDED.snapshot,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar o relatório gerado: %w", err)
	}

	return nil
}
