package quote

import (
	"context"

	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

// Patch holds the columns of a coalescing update; nil keeps the stored value.
// Status is absent on purpose: it is owned by the database.
type Patch struct {
	Stage      *string
	Notes      *string
	TotalValue *float64
}

type Repository interface {
	List(ctx context.Context) ([]models.Quote, error)
	Get(ctx context.Context, id uint) (*models.Quote, error)
	Create(ctx context.Context, q *models.Quote) error
	Update(ctx context.Context, id uint, p Patch) (*models.Quote, error)
	Delete(ctx context.Context, id uint) (*models.Quote, error)
}
