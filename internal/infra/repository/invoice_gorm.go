package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/invoice"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

type InvoiceGormRepository struct {
	crud gormCRUD[models.Invoice]
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{crud: gormCRUD[models.Invoice]{db: db, order: "vencimento ASC"}}
}

func (r *InvoiceGormRepository) List(ctx context.Context) ([]models.Invoice, error) {
	return r.crud.list(ctx)
}

func (r *InvoiceGormRepository) Get(ctx context.Context, id uint) (*models.Invoice, error) {
	return r.crud.get(ctx, id)
}

func (r *InvoiceGormRepository) Create(ctx context.Context, inv *models.Invoice) error {
	return r.crud.create(ctx, inv)
}

func (r *InvoiceGormRepository) Update(
	ctx context.Context,
	id uint,
	p domain.Patch,
) (*models.Invoice, error) {

	return r.crud.updateReturning(ctx, `
		UPDATE boletos
		SET vencimento = COALESCE(?, vencimento),
		    valor = COALESCE(?, valor),
		    pago = COALESCE(?, pago),
		    data_pagamento = COALESCE(?, data_pagamento)
		WHERE id = ?
		RETURNING *`,
		nullable(p.DueDate),
		nullable(p.Amount),
		nullable(p.Paid),
		nullable(p.PaymentDate),
		id,
	)
}

func (r *InvoiceGormRepository) Delete(ctx context.Context, id uint) (*models.Invoice, error) {
	return r.crud.delete(ctx, id)
}

// Compile-time check
var _ domain.Repository = (*InvoiceGormRepository)(nil)
