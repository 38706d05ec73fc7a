package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/quote"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

type QuoteGormRepository struct {
	crud gormCRUD[models.Quote]
}

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository {
	return &QuoteGormRepository{crud: gormCRUD[models.Quote]{db: db}}
}

func (r *QuoteGormRepository) List(ctx context.Context) ([]models.Quote, error) {
	return r.crud.list(ctx)
}

func (r *QuoteGormRepository) Get(ctx context.Context, id uint) (*models.Quote, error) {
	return r.crud.get(ctx, id)
}

// Create never writes status; the row returned carries whatever the
// database trigger derived.
func (r *QuoteGormRepository) Create(ctx context.Context, q *models.Quote) error {
	q.Status = nil
	return r.crud.create(ctx, q)
}

func (r *QuoteGormRepository) Update(
	ctx context.Context,
	id uint,
	p domain.Patch,
) (*models.Quote, error) {

	return r.crud.updateReturning(ctx, `
		UPDATE cotacoes
		SET etapa = COALESCE(?, etapa),
		    observacoes = COALESCE(?, observacoes),
		    valor_total = COALESCE(?, valor_total)
		WHERE id = ?
		RETURNING *`,
		nullable(p.Stage),
		nullable(p.Notes),
		nullable(p.TotalValue),
		id,
	)
}

func (r *QuoteGormRepository) Delete(ctx context.Context, id uint) (*models.Quote, error) {
	return r.crud.delete(ctx, id)
}

// Compile-time check
var _ domain.Repository = (*QuoteGormRepository)(nil)
