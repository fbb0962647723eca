package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *domain.Passenger) error
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Passenger, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

// Create checks that the flight exists and inserts the passenger in one
// transaction. Nothing is committed unless both statements succeed.
func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	if !storableFlightID(passenger.FlightID) {
		return domain.ErrFlightNotFound
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, passenger.FlightID).Scan(&exists); err != nil {
		return fmt.Errorf("check flight %d: %w", passenger.FlightID, err)
	}
	if !exists {
		return domain.ErrFlightNotFound
	}

	if err := tx.QueryRow(ctx, `INSERT INTO passengers (name, flight_id) VALUES ($1, $2) RETURNING id`,
		passenger.Name, passenger.FlightID).Scan(&passenger.ID); err != nil {
		return fmt.Errorf("insert passenger: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx: %w", err)
	}
	return nil
}

func (r *PGPassengerRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Passenger, error) {
	if !storableFlightID(flightID) {
		return []domain.Passenger{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id, name, flight_id FROM passengers WHERE flight_id=$1`, flightID)
	if err != nil {
		return nil, fmt.Errorf("query passengers: %w", err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.Name, &p.FlightID); err != nil {
			return nil, fmt.Errorf("scan passenger: %w", err)
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
