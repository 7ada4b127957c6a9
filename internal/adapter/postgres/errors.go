package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// SQLSTATE classes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError translates pgx and pgconn errors into domain errors, keeping
// entity and ref (slug or id) as message decoration only. Context
// cancellation and deadline errors pass through unmapped.
func MapError(err error, entity, ref string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrConflict)
		case codeCheckViolation:
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, ref, err)
}
