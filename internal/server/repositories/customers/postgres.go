package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/dbx"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

const columns = "id, fname, lname, email, phone"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (*models.Customer, error) {
	c := &models.Customer{}
	if err := row.Scan(&c.ID, &c.Fname, &c.Lname, &c.Email, &c.Phone); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Customer, 0)
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	c, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, in *models.Customer) (*models.Customer, bool, error) {
	query :=
		`INSERT INTO customers (fname, lname, email, phone) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING ` + columns

	c, err := scan(r.db.QueryRowContext(ctx, query, in.Fname, in.Lname, in.Email, in.Phone))
	if err == nil {
		return c, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("db error: %w", dbx.ClassifyError(err))
	}

	c, err = scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM customers WHERE email = $1`, in.Email))
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return c, false, nil
}
