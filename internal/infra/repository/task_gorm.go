package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/task"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

type TaskGormRepository struct {
	crud gormCRUD[models.Task]
}

func NewTaskGormRepository(db *gorm.DB) *TaskGormRepository {
	return &TaskGormRepository{crud: gormCRUD[models.Task]{db: db, order: "id DESC"}}
}

func (r *TaskGormRepository) List(ctx context.Context) ([]models.Task, error) {
	return r.crud.list(ctx)
}

func (r *TaskGormRepository) Get(ctx context.Context, id uint) (*models.Task, error) {
	return r.crud.get(ctx, id)
}

func (r *TaskGormRepository) Create(ctx context.Context, t *models.Task) error {
	return r.crud.create(ctx, t)
}

func (r *TaskGormRepository) Delete(ctx context.Context, id uint) (*models.Task, error) {
	return r.crud.delete(ctx, id)
}

// Compile-time check
var _ domain.Repository = (*TaskGormRepository)(nil)
