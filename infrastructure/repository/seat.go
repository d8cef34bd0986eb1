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

const seatsTable = "seats"

type SeatRepository interface {
	CreateSeat(seat *domain.Seat) (*domain.Seat, error)
	UpdateSeat(seat *domain.Seat) error
	GetSeatByID(seatID string) (*domain.Seat, error)
	ListSeats() ([]*domain.Seat, error)
}

type seatRepository struct {
	conn *postgres.Connection
}

func NewSeatRepository(conn *postgres.Connection) SeatRepository {
	return &seatRepository{
		conn: conn,
	}
}

func (r *seatRepository) CreateSeat(seat *domain.Seat) (*domain.Seat, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do assento: %w", err)
	}
	seat.ID = id

	query := squirrel.
		Insert(seatsTable).
		Columns("id", "name", "email", "role", "status", "hubspot_owner_id", "created_at", "updated_at").
		Values(seat.ID, seat.Name, seat.Email, seat.Role, seat.Status, seat.HubSpotOwnerID, squirrel.Expr("NOW()"), squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return nil, err
	}

	return seat, nil
}

func (r *seatRepository) UpdateSeat(seat *domain.Seat) error {
	queryBuilder := squirrel.
		Update(seatsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": seat.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if seat.Name != "" {
		queryBuilder = queryBuilder.Set("name", seat.Name)
	}

	if seat.Email != "" {
		queryBuilder = queryBuilder.Set("email", seat.Email)
	}

	if seat.Role != "" {
		queryBuilder = queryBuilder.Set("role", seat.Role)
	}

	if seat.Status != "" {
		queryBuilder = queryBuilder.Set("status", seat.Status)
	}

	if seat.HubSpotOwnerID != nil {
		queryBuilder = queryBuilder.Set("hubspot_owner_id", seat.HubSpotOwnerID)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sqlQuery, args...)

	return err
}

func (r *seatRepository) GetSeatByID(seatID string) (*domain.Seat, error) {
	seatSQL, seatArgs, err := squirrel.
		Select("id, name, email, role, status, hubspot_owner_id, created_at, updated_at").
		From(seatsTable).
		Where(squirrel.Eq{"id": seatID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(seatSQL, seatArgs...)

	seat, err := deserializeSeat(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return seat, nil
}

func (r *seatRepository) ListSeats() ([]*domain.Seat, error) {
	seatsSQL, seatsArgs, err := squirrel.
		Select("id, name, email, role, status, hubspot_owner_id, created_at, updated_at").
		From(seatsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(seatsSQL, seatsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	seats := make([]*domain.Seat, 0)
	for rows.Next() {
		seat, err := deserializeSeat(rows.Scan)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func deserializeSeat(scan func(dest ...any) error) (*domain.Seat, error) {
	seat := &domain.Seat{}
	var ownerID sql.NullString

	if err := scan(
		&seat.ID,
		&seat.Name,
		&seat.Email,
		&seat.Role,
		&seat.Status,
		&ownerID,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if ownerID.Valid && ownerID.String != "" {
		seat.HubSpotOwnerID = &ownerID.String
	}

	return seat, nil
}
