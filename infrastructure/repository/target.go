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

const targetsTable = "targets"

type TargetRepository interface {
	FindByOwner(ownerID string) (*domain.Target, error)
	FindByTeam(teamID string) (*domain.Target, error)
	FindGlobal() (*domain.Target, error)
	SaveGlobal(target *domain.Target) error
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) FindByOwner(ownerID string) (*domain.Target, error) {
	return r.find(squirrel.Eq{"scope": domain.TargetScopeOwner, "owner_id": ownerID})
}

func (r *targetRepository) FindByTeam(teamID string) (*domain.Target, error) {
	return r.find(squirrel.Eq{"scope": domain.TargetScopeTeam, "team_id": teamID})
}

func (r *targetRepository) FindGlobal() (*domain.Target, error) {
	return r.find(squirrel.Eq{"scope": domain.TargetScopeGlobal})
}

func (r *targetRepository) find(whereClause map[string]interface{}) (*domain.Target, error) {
	targetSQL, targetArgs, err := squirrel.
		Select("id, scope, owner_id, team_id, meetings_held, qualified_opps, conversions, mrr_per_conversion, updated_at").
		From(targetsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(targetSQL, targetArgs...)

	target := &domain.Target{}
	var ownerID, teamID string

	if err := row.Scan(
		&target.ID,
		&target.Scope,
		&ownerID,
		&teamID,
		&target.MeetingsHeld,
		&target.QualifiedOpps,
		&target.Conversions,
		&target.MRRPerConversion,
		&target.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	// Escopos mais largos guardam string vazia nas chaves não usadas
	if ownerID != "" {
		target.OwnerID = &ownerID
	}
	if teamID != "" {
		target.TeamID = &teamID
	}

	return target, nil
}

// SaveGlobal faz o upsert da meta global, chaveada por (scope, owner, team)
// com owner e team vazios. Última escrita vence.
func (r *targetRepository) SaveGlobal(target *domain.Target) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id da meta: %w", err)
	}

	query := squirrel.
		Insert(targetsTable).
		Columns("id", "scope", "owner_id", "team_id", "meetings_held", "qualified_opps", "conversions", "mrr_per_conversion", "updated_at").
		Values(
			id,
			domain.TargetScopeGlobal,
			"",
			"",
			target.MeetingsHeld,
			target.QualifiedOpps,
			target.Conversions,
			target.MRRPerConversion,
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (scope, owner_id, team_id) DO UPDATE SET
				meetings_held = EXCLUDED.meetings_held,
				qualified_opps = EXCLUDED.qualified_opps,
				conversions = EXCLUDED.conversions,
				mrr_per_conversion = EXCLUDED.mrr_per_conversion,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar a meta global: %w", err)
	}

	return nil
}
