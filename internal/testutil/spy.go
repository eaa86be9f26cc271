package testutil

import (
	"context"
	"sync"

	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
)

// SpyRepository wraps a repository, counting writes and optionally failing every call.
type SpyRepository[T any] struct {
	store.Repository[T]

	mu     sync.Mutex
	writes int
	fail   error
}

func Spy[T any](inner store.Repository[T]) *SpyRepository[T] {
	return &SpyRepository[T]{Repository: inner}
}

// FailWith makes every subsequent call return err.
func (r *SpyRepository[T]) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

// Writes reports how many create/update/delete calls reached the store.
func (r *SpyRepository[T]) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func (r *SpyRepository[T]) failure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fail
}

func (r *SpyRepository[T]) countWrite() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	return r.fail
}

func (r *SpyRepository[T]) Find(ctx context.Context, q store.Query) ([]T, error) {
	if err := r.failure(); err != nil {
		return nil, err
	}
	return r.Repository.Find(ctx, q)
}

func (r *SpyRepository[T]) First(ctx context.Context, q store.Query) (*T, error) {
	if err := r.failure(); err != nil {
		return nil, err
	}
	return r.Repository.First(ctx, q)
}

func (r *SpyRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.countWrite(); err != nil {
		return err
	}
	return r.Repository.Create(ctx, entity)
}

func (r *SpyRepository[T]) Update(ctx context.Context, entity *T, columns ...string) error {
	if err := r.countWrite(); err != nil {
		return err
	}
	return r.Repository.Update(ctx, entity, columns...)
}

func (r *SpyRepository[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.countWrite(); err != nil {
		return err
	}
	return r.Repository.Delete(ctx, entity)
}
