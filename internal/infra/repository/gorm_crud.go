package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
)

const pgUniqueViolation = "23505"

var (
	errNotFound = httperr.ErrBusiness(httperr.CodeNotFound)
	errConflict = httperr.ErrBusiness(httperr.CodeConflict)
)

// gormCRUD holds the single-statement operations shared by every entity
// table. T is a gorm model with an `id` primary key.
type gormCRUD[T any] struct {
	db    *gorm.DB
	order string
}

func (r gormCRUD[T]) list(ctx context.Context) ([]T, error) {
	q := r.db.WithContext(ctx)
	if r.order != "" {
		q = q.Order(r.order)
	}

	rows := []T{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r gormCRUD[T]) get(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	return &row, nil
}

// create inserts row and refreshes it from INSERT ... RETURNING *.
func (r gormCRUD[T]) create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Create(row).Error
}

// updateReturning runs a raw UPDATE ... RETURNING * statement.
func (r gormCRUD[T]) updateReturning(ctx context.Context, sql string, args ...interface{}) (*T, error) {
	var row T
	res := r.db.WithContext(ctx).Raw(sql, args...).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errNotFound
	}
	return &row, nil
}

// delete removes one row and returns its prior state.
func (r gormCRUD[T]) delete(ctx context.Context, id uint) (*T, error) {
	var row T
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errNotFound
	}
	return &row, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// nullable turns a nil pointer into an untyped SQL NULL argument.
func nullable[V any](v *V) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
