package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/dbx"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

const columns = "id, cprojectname, plocation"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM cprojects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Project, 0)
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.Cprojectname, &p.Plocation); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM cprojects WHERE id = $1`, id).
		Scan(&p.ID, &p.Cprojectname, &p.Plocation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in *models.Project) (*models.Project, error) {
	query :=
		`INSERT INTO cprojects (cprojectname, plocation) VALUES ($1, $2)
		 RETURNING ` + columns

	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, in.Cprojectname, in.Plocation).
		Scan(&p.ID, &p.Cprojectname, &p.Plocation)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.ClassifyError(err))
	}
	return p, nil
}
