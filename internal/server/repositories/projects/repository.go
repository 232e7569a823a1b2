// Package projects stores company projects (table "cprojects").
package projects

import (
	"context"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
}
