package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	db        *pgxpool.Pool
	dbErr     error
	getDbOnce sync.Once
)

// testPool connects to DATABASE_URL once per test binary; tests needing
// PostgreSQL are skipped when it is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL is not set")
	}

	getDbOnce.Do(func() {
		db, dbErr = pgxpool.New(context.Background(), url)
		if dbErr != nil {
			return
		}
		dbErr = createSchema(db)
	})
	require.NoError(t, dbErr)
	return db
}

func createSchema(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(), `
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY,
			origin VARCHAR NOT NULL,
			destination VARCHAR NOT NULL,
			duration INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS passengers (
			id SERIAL PRIMARY KEY,
			name VARCHAR NOT NULL,
			flight_id INTEGER NOT NULL
		);
	`)
	return err
}

func resetTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	_, err := db.Exec(context.Background(), `TRUNCATE passengers, flights`)
	require.NoError(t, err)
}

func seedFlights(t *testing.T, db *pgxpool.Pool, flights ...domain.Flight) {
	t.Helper()
	for _, f := range flights {
		_, err := db.Exec(context.Background(),
			`INSERT INTO flights (id, origin, destination, duration) VALUES ($1, $2, $3, $4)`,
			f.ID, f.Origin, f.Destination, f.Duration)
		require.NoError(t, err)
	}
}

func countPassengers(t *testing.T, db *pgxpool.Pool) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), `SELECT count(*) FROM passengers`).Scan(&n))
	return n
}
