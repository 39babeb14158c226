package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/postplus/postplus_api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", classify(err))
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", classify(err))
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", classify(err))
}

// classify attaches the matching domain error to driver errors callers can act on.
func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
	}

	return err
}
