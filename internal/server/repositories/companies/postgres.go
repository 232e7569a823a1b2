package companies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/dbx"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

const columns = "id, cname, caddress, cgst, cphone, cowner_name, created_at"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (*models.Company, error) {
	c := &models.Company{}
	var gst sql.NullString
	if err := row.Scan(&c.ID, &c.Cname, &c.Caddress, &gst, &c.Cphone, &c.CownerName, &c.CreatedAt); err != nil {
		return nil, err
	}
	if gst.Valid {
		c.Cgst = &gst.String
	}
	return c, nil
}

func wrapErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", dbx.ClassifyError(err))
}

// nullable turns an empty optional value into SQL NULL.
func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Company, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM company ORDER BY id`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	result := make([]*models.Company, 0)
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	c, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM company WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}

func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, in *models.Company) (*models.Company, bool, error) {
	query :=
		`INSERT INTO company (cname, caddress, cgst, cphone, cowner_name)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (cname) DO NOTHING
		 RETURNING ` + columns

	c, err := scan(r.db.QueryRowContext(ctx, query, in.Cname, in.Caddress, nullable(in.Cgst), in.Cphone, in.CownerName))
	if err == nil {
		return c, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, wrapErr(err)
	}

	c, err = scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM company WHERE cname = $1`, in.Cname))
	if err != nil {
		return nil, false, wrapErr(err)
	}
	return c, false, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error) {
	var (
		sets []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Cname != nil {
		add("cname", *patch.Cname)
	}
	if patch.Caddress != nil {
		add("caddress", *patch.Caddress)
	}
	if patch.Cgst != nil {
		add("cgst", nullable(patch.Cgst))
	}
	if patch.Cphone != nil {
		add("cphone", *patch.Cphone)
	}
	if patch.CownerName != nil {
		add("cowner_name", *patch.CownerName)
	}

	if len(sets) == 0 {
		return nil, common.ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE company SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), columns)

	c, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.Company, error) {
	c, err := scan(r.db.QueryRowContext(ctx, `DELETE FROM company WHERE id = $1 RETURNING `+columns, id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}
