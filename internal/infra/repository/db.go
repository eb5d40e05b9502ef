package repository

import (
	"context"
	"errors"
	"log/slog"

	"lounge-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Classify maps a driver error onto a repository error kind.
func Classify(err error) infra.RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return infra.KindForeignKeyViolated
		case pgErrCodeExclusionViolation:
			return infra.KindConflict
		}
	}
	return infra.KindDBFailure
}

func wrapErr(logger *slog.Logger, msg string, err error) error {
	return infra.WrapRepoErr(logger, Classify(err), msg, err)
}

// expectOne turns an UPDATE that touched no row into a not-found error.
func expectOne(logger *slog.Logger, what string, tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(logger, infra.KindNotFound, what+" not found", nil)
	}
	return nil
}

func collect[T any](logger *slog.Logger, what string, rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, wrapErr(logger, "failed to scan "+what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(logger, "failed to list "+what, err)
	}
	return out, nil
}
