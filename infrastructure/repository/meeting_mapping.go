package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

const meetingMappingsTable = "meeting_mappings"

type MeetingMappingRepository interface {
	GetByCRMMeetingID(crmMeetingID string) (*domain.MeetingMapping, error)
	ListByCRMMeetingIDs(crmMeetingIDs []string) (map[string]*domain.MeetingMapping, error)
	SaveOrUpdate(mapping *domain.MeetingMapping) error
}

type meetingMappingRepository struct {
	conn *postgres.Connection
}

func NewMeetingMappingRepository(conn *postgres.Connection) MeetingMappingRepository {
	return &meetingMappingRepository{
		conn: conn,
	}
}

func (r *meetingMappingRepository) GetByCRMMeetingID(crmMeetingID string) (*domain.MeetingMapping, error) {
	mappingSQL, mappingArgs, err := squirrel.
		Select("id, crm_meeting_id, recording_id, share_url, source, created_at, updated_at").
		From(meetingMappingsTable).
		Where(squirrel.Eq{"crm_meeting_id": crmMeetingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(mappingSQL, mappingArgs...)

	mapping, err := deserializeMapping(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return mapping, nil
}

func (r *meetingMappingRepository) ListByCRMMeetingIDs(crmMeetingIDs []string) (map[string]*domain.MeetingMapping, error) {
	mappings := make(map[string]*domain.MeetingMapping, len(crmMeetingIDs))
	if len(crmMeetingIDs) == 0 {
		return mappings, nil
	}

	mappingSQL, mappingArgs, err := squirrel.
		Select("id, crm_meeting_id, recording_id, share_url, source, created_at, updated_at").
		From(meetingMappingsTable).
		Where(squirrel.Eq{"crm_meeting_id": crmMeetingIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(mappingSQL, mappingArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return mappings, nil
		}
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		mapping, err := deserializeMapping(rows.Scan)
		if err != nil {
			return nil, err
		}
		mappings[mapping.CRMMeetingID] = mapping
	}

	return mappings, rows.Err()
}

// SaveOrUpdate grava o vínculo reunião-gravação. Única por reunião do CRM:
// salvar de novo sobrescreve gravação, link e origem.
func (r *meetingMappingRepository) SaveOrUpdate(mapping *domain.MeetingMapping) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id do mapeamento: %w", err)
	}

	query := squirrel.
		Insert(meetingMappingsTable).
		Columns("id", "crm_meeting_id", "recording_id", "share_url", "source", "created_at", "updated_at").
		Values(
			id,
			mapping.CRMMeetingID,
			mapping.RecordingID,
			mapping.ShareURL,
			mapping.Source,
			squirrel.Expr("NOW()"),
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (crm_meeting_id) DO UPDATE SET
				recording_id = EXCLUDED.recording_id,
				share_url = EXCLUDED.share_url,
				source = EXCLUDED.source,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar o mapeamento: %w", err)
	}

	return nil
}

func deserializeMapping(scan func(dest ...any) error) (*domain.MeetingMapping, error) {
	mapping := &domain.MeetingMapping{}
	var shareURL sql.NullString

	if err := scan(
		&mapping.ID,
		&mapping.CRMMeetingID,
		&mapping.RecordingID,
		&shareURL,
		&mapping.Source,
		&mapping.CreatedAt,
		&mapping.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if shareURL.Valid && shareURL.String != "" {
		mapping.ShareURL = &shareURL.String
	}

	return mapping, nil
}
