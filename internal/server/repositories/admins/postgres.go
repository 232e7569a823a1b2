package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/dbx"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

const columns = "id, fname, lname, email, phone, gender"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (*models.Admin, error) {
	a := &models.Admin{}
	if err := row.Scan(&a.ID, &a.Fname, &a.Lname, &a.Email, &a.Phone, &a.Gender); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Admin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM admin ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Admin, 0)
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	a, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM admin WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// CreateIfAbsent inserts the admin unless the email is already on file, in
// which case the stored row is returned and created is false.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, in *models.Admin) (*models.Admin, bool, error) {
	query :=
		`INSERT INTO admin (fname, lname, email, phone, gender) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING ` + columns

	a, err := scan(r.db.QueryRowContext(ctx, query, in.Fname, in.Lname, in.Email, in.Phone, in.Gender))
	if err == nil {
		return a, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("db error: %w", dbx.ClassifyError(err))
	}

	a, err = scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM admin WHERE email = $1`, in.Email))
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return a, false, nil
}
