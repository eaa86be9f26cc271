// Package store is the narrow persistence contract the entity services write through.
// Queries are conjunctions of equality predicates with optional eager loading of
// related records; every write touches a single entity.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type condition struct {
	expr string
	args []any
}

// Query is an immutable predicate plus the associations to resolve with each match.
type Query struct {
	conds    []condition
	preloads []string
	order    string
}

// All matches every record of a kind.
func All() Query {
	return Query{}
}

// Where starts a query with one predicate, e.g. Where("complex_id = ?", 1).
func Where(expr string, args ...any) Query {
	return Query{}.Where(expr, args...)
}

// ByID matches the record with the given identifier.
func ByID(id uint) Query {
	return Where("id = ?", id)
}

// Where adds a predicate joined with AND.
func (q Query) Where(expr string, args ...any) Query {
	next := q.clone()
	next.conds = append(next.conds, condition{expr: expr, args: args})
	return next
}

// Preload resolves associations (dot paths allowed, e.g. "Group.SportType").
func (q Query) Preload(assocs ...string) Query {
	next := q.clone()
	next.preloads = append(next.preloads, assocs...)
	return next
}

// OrderBy overrides the default "id ASC" ordering of Find.
func (q Query) OrderBy(order string) Query {
	next := q.clone()
	next.order = order
	return next
}

func (q Query) clone() Query {
	return Query{
		conds:    append([]condition(nil), q.conds...),
		preloads: append([]string(nil), q.preloads...),
		order:    q.order,
	}
}

func (q Query) apply(db *gorm.DB) *gorm.DB {
	for _, c := range q.conds {
		db = db.Where(c.expr, c.args...)
	}
	for _, p := range q.preloads {
		db = db.Preload(p)
	}
	return db
}

// Repository is the Store Adapter for one entity kind.
type Repository[T any] interface {
	// Find returns every record matching q.
	Find(ctx context.Context, q Query) ([]T, error)
	// First returns the first match, or (nil, nil) when nothing matches.
	First(ctx context.Context, q Query) (*T, error)
	Create(ctx context.Context, entity *T) error
	// Update writes only the named columns of entity, zero values included.
	Update(ctx context.Context, entity *T, columns ...string) error
	Delete(ctx context.Context, entity *T) error
}

type gormRepository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed Repository for T.
func NewRepository[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) Find(ctx context.Context, q Query) ([]T, error) {
	order := q.order
	if order == "" {
		order = "id ASC"
	}
	records := make([]T, 0)
	if err := q.apply(r.db.WithContext(ctx)).Order(order).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormRepository[T]) First(ctx context.Context, q Query) (*T, error) {
	var record T
	err := q.apply(r.db.WithContext(ctx)).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

func (r *gormRepository[T]) Update(ctx context.Context, entity *T, columns ...string) error {
	if len(columns) == 0 {
		return errors.New("store: update without columns")
	}
	return r.db.WithContext(ctx).Model(entity).Select(columns).Updates(entity).Error
}

func (r *gormRepository[T]) Delete(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}

// IsDuplicate reports whether err is a unique-constraint violation raised by the store.
// It requires the connection to be opened with gorm.Config{TranslateError: true}.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
