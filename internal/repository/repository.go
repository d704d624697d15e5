// Package repository provides the generic entity store used by every resource.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when an id lookup misses
var ErrNotFound = errors.New("record not found")

// Repository is the CRUD surface shared by pizzas, ingredients and menu entries
type Repository[T any] interface {
	// FindAll returns every row ordered by id
	FindAll(ctx context.Context) ([]T, error)
	// FindByID returns the row with the given id or ErrNotFound
	FindByID(ctx context.Context, id uint) (T, error)
	// ExistsByID reports whether a row with the given id exists
	ExistsByID(ctx context.Context, id uint) (bool, error)
	// Create inserts a new row, including nested associations, and assigns its id
	Create(ctx context.Context, entity *T) error
	// CreateAll inserts every entity in a single transaction
	CreateAll(ctx context.Context, entities []T) error
	// Save overwrites every column of an existing row, leaving associations alone
	Save(ctx context.Context, entity *T) error
	// DeleteByID removes the row and reports whether anything was deleted
	DeleteByID(ctx context.Context, id uint) (bool, error)
	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) Repository[T]
}

type gormRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// New creates a GORM backed repository. Preloads name the associations
// loaded together with each row on reads.
func New[T any](db *gorm.DB, preloads ...string) Repository[T] {
	return &gormRepository[T]{db: db, preloads: preloads}
}

func (r *gormRepository[T]) WithTx(tx *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: tx, preloads: r.preloads}
}

// query starts a read with the configured preloads, children ordered by id
func (r *gormRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, association := range r.preloads {
		q = q.Preload(association, func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}
	return q
}

func (r *gormRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.query(ctx).Order("id").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id uint) (T, error) {
	var entity T
	if err := r.query(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, ErrNotFound
		}
		return entity, err
	}
	return entity, nil
}

func (r *gormRepository[T]) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *gormRepository[T]) CreateAll(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entities).Error
	})
}

func (r *gormRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *gormRepository[T]) DeleteByID(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
