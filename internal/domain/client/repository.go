package client

import (
	"context"

	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

// Patch holds the columns of a coalescing update; nil keeps the stored value.
type Patch struct {
	Name      *string
	LegalName *string
	TaxID     *string
	Phone     *string
	Email     *string
}

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)
	Get(ctx context.Context, id uint) (*models.Client, error)
	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, id uint, p Patch) (*models.Client, error)
	Delete(ctx context.Context, id uint) (*models.Client, error)
}
