package task

import (
	"context"

	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

// Tasks are immutable once created: there is no update.
type Repository interface {
	// List returns the newest tasks first.
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id uint) (*models.Task, error)
	Create(ctx context.Context, t *models.Task) error
	Delete(ctx context.Context, id uint) (*models.Task, error)
}
