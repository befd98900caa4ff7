// Package postgres provides PostgreSQL implementations of the repository
// interfaces. Constraint violations reported by the server are translated
// into domain errors so the use case layer never inspects SQLSTATE codes.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"newswire/internal/domain/entity"
)

// PostgreSQL SQLSTATE codes this adapter cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// linkUniqueConstraint is the named constraint backing the duplicate-link
// contract. Must match the schema in internal/infra/db/migrate.go.
const linkUniqueConstraint = "articles_link_key"

// translateError maps a driver error to a domain error where one applies.
// A unique violation on the article link constraint becomes
// entity.ErrDuplicateLink; everything else passes through unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == linkUniqueConstraint {
			return entity.ErrDuplicateLink
		}
	}
	return err
}

// isForeignKeyViolation reports whether the error is a foreign key violation.
// Association inserts can hit this when a topic is deleted between validation
// and insertion; the writer treats it as a storage failure after rollback.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
