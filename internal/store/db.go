package store

import (
	"errors"

	"dropz-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a guarded write finds its precondition
	// already violated (duplicate task, same-day check-in, repeated claim)
	ErrConflict = errors.New("conflict")
	// ErrInsufficientBalance is returned when a claim would push
	// total_distributed past total_amount
	ErrInsufficientBalance = errors.New("insufficient pool balance")
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, err
	}
	return Store{db: db, logger: logger}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}
