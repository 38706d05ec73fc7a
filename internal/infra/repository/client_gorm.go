package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/client"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

type ClientGormRepository struct {
	crud gormCRUD[models.Client]
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{crud: gormCRUD[models.Client]{db: db}}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	return r.crud.list(ctx)
}

func (r *ClientGormRepository) Get(ctx context.Context, id uint) (*models.Client, error) {
	return r.crud.get(ctx, id)
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	if err := r.crud.create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return errConflict
		}
		return err
	}
	return nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	id uint,
	p domain.Patch,
) (*models.Client, error) {

	c, err := r.crud.updateReturning(ctx, `
		UPDATE clientes
		SET nome = COALESCE(?, nome),
		    razao_social = COALESCE(?, razao_social),
		    cnpj = COALESCE(?, cnpj),
		    telefone = COALESCE(?, telefone),
		    email = COALESCE(?, email)
		WHERE id = ?
		RETURNING *`,
		nullable(p.Name),
		nullable(p.LegalName),
		nullable(p.TaxID),
		nullable(p.Phone),
		nullable(p.Email),
		id,
	)
	if err != nil && isUniqueViolation(err) {
		return nil, errConflict
	}
	return c, err
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) (*models.Client, error) {
	return r.crud.delete(ctx, id)
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
