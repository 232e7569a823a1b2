package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/corpdesk/internal/common"
)

// SQLSTATE codes the repositories care about.
const (
	pgUniqueViolation = "23505"
)

// ClassifyError maps driver errors onto the common sentinels. A unique
// constraint violation becomes common.ErrDuplicateKey; anything else is
// returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return common.ErrDuplicateKey
	}
	return err
}
