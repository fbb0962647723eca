package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// List returns every flight row in whatever order the database yields them.
func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, origin, destination, duration FROM flights`)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Origin, &f.Destination, &f.Duration); err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if !storableFlightID(id) {
		return nil, domain.ErrFlightNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, origin, destination, duration FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Origin, &f.Destination, &f.Duration); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	return &f, nil
}

// storableFlightID reports whether id fits the INTEGER flight id columns.
// Anything outside int4 cannot match a row and would fail to encode as a parameter.
func storableFlightID(id int64) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

var _ FlightRepository = (*PGFlightRepository)(nil)
