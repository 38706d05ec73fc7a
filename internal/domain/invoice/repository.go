package invoice

import (
	"context"

	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

// Patch holds the columns of a coalescing update; nil keeps the stored value.
type Patch struct {
	DueDate     *models.Date
	Amount      *float64
	Paid        *bool
	PaymentDate *models.Date
}

type Repository interface {
	// List returns every invoice ordered by due date.
	List(ctx context.Context) ([]models.Invoice, error)
	Get(ctx context.Context, id uint) (*models.Invoice, error)
	Create(ctx context.Context, inv *models.Invoice) error
	Update(ctx context.Context, id uint, p Patch) (*models.Invoice, error)
	Delete(ctx context.Context, id uint) (*models.Invoice, error)
}
