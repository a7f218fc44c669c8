package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the SQLSTATE raised when a unique index rejects a write.
const pgUniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// mapWriteError turns a unique violation into apperrors.ErrDuplicate and wraps everything else.
func mapWriteError(err error, action string) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", action, apperrors.ErrDuplicate)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// mapReadError turns pgx.ErrNoRows into apperrors.ErrNotFound.
func mapReadError(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
